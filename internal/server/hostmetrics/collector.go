// Package hostmetrics takes a snapshot of host CPU load, memory usage and
// temperature sensors.
package hostmetrics

import (
	"context"
	"fmt"
	"sort"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/sensors"

	"github.com/dmitrijs2005/filehost/internal/logging"
)

// Snapshot is the body served by the metrics endpoint.
type Snapshot struct {
	CPU  CPULoad     `json:"cpu"`
	Mem  Memory      `json:"mem"`
	Temp Temperature `json:"temp"`
}

type CPULoad struct {
	// CurrentLoad is the overall busy percentage since the previous sample.
	CurrentLoad float64   `json:"currentLoad"`
	CPUs        []float64 `json:"cpus"`
}

type Memory struct {
	Total     uint64  `json:"total"`
	Free      uint64  `json:"free"`
	Used      uint64  `json:"used"`
	Available uint64  `json:"available"`
	Active    uint64  `json:"active"`
	UsedPct   float64 `json:"usedPercent"`
}

// Temperature readings in degrees Celsius. Hosts without readable sensors
// report Main as nil and an empty Sensors list.
type Temperature struct {
	Main    *float64        `json:"main"`
	Max     *float64        `json:"max"`
	Sensors []SensorReading `json:"sensors"`
}

type SensorReading struct {
	Key         string  `json:"key"`
	Temperature float64 `json:"temperature"`
}

var (
	cpuPercent    = cpu.PercentWithContext
	virtualMemory = mem.VirtualMemoryWithContext
	temperatures  = sensors.TemperaturesWithContext
)

type Collector struct {
	log logging.Logger
}

func NewCollector(log logging.Logger) *Collector {
	return &Collector{log: log}
}

// Collect samples CPU and memory, which must succeed, and temperature,
// which is best effort.
func (c *Collector) Collect(ctx context.Context) (*Snapshot, error) {
	total, err := cpuPercent(ctx, 0, false)
	if err != nil {
		return nil, fmt.Errorf("cpu load: %w", err)
	}
	perCPU, err := cpuPercent(ctx, 0, true)
	if err != nil {
		return nil, fmt.Errorf("cpu load: %w", err)
	}

	vm, err := virtualMemory(ctx)
	if err != nil {
		return nil, fmt.Errorf("memory: %w", err)
	}

	snap := &Snapshot{
		CPU: CPULoad{CPUs: perCPU},
		Mem: Memory{
			Total:     vm.Total,
			Free:      vm.Free,
			Used:      vm.Used,
			Available: vm.Available,
			Active:    vm.Active,
			UsedPct:   vm.UsedPercent,
		},
		Temp: c.temperature(ctx),
	}
	if len(total) > 0 {
		snap.CPU.CurrentLoad = total[0]
	}
	if snap.CPU.CPUs == nil {
		snap.CPU.CPUs = []float64{}
	}

	return snap, nil
}

func (c *Collector) temperature(ctx context.Context) Temperature {
	out := Temperature{Sensors: []SensorReading{}}

	stats, err := temperatures(ctx)
	if err != nil {
		// gopsutil reports partial reads as warnings next to valid stats.
		c.log.Warn(ctx, "temperature sensors unavailable", "error", err)
	}

	for _, s := range stats {
		if s.Temperature <= 0 {
			continue
		}
		out.Sensors = append(out.Sensors, SensorReading{Key: s.SensorKey, Temperature: s.Temperature})
	}
	if len(out.Sensors) == 0 {
		return out
	}

	sort.Slice(out.Sensors, func(i, j int) bool { return out.Sensors[i].Key < out.Sensors[j].Key })

	var sum, hottest float64
	for _, s := range out.Sensors {
		sum += s.Temperature
		if s.Temperature > hottest {
			hottest = s.Temperature
		}
	}
	avg := sum / float64(len(out.Sensors))
	out.Main, out.Max = &avg, &hottest

	return out
}
