// Package models defines the client-side view of filehost API payloads.
package models

import (
	"fmt"
	"time"
)

type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// AuthResponse is returned by both signup and signin.
type AuthResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
	Token   string `json:"token"`
}

type File struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Size       int64     `json:"size"`
	Key        string    `json:"key"`
	UploadedAt time.Time `json:"uploadedAt"`
	OwnerID    int64     `json:"userId"`
}

func (f File) String() string {
	return fmt.Sprintf("%d\t%s\t%s\t%s", f.ID, f.Name, HumanSize(f.Size), f.UploadedAt.Local().Format(time.DateTime))
}

type UploadTicket struct {
	UploadURL string `json:"uploadUrl"`
	Key       string `json:"key"`
	ExpiresIn int64  `json:"expiresIn"`
	Message   string `json:"message"`
}

// Metrics holds the subset of the host snapshot the CLI displays.
type Metrics struct {
	CPU struct {
		CurrentLoad float64   `json:"currentLoad"`
		CPUs        []float64 `json:"cpus"`
	} `json:"cpu"`
	Mem struct {
		Total uint64 `json:"total"`
		Used  uint64 `json:"used"`
		Free  uint64 `json:"free"`
	} `json:"mem"`
	Temp struct {
		Main *float64 `json:"main"`
		Max  *float64 `json:"max"`
	} `json:"temp"`
}

// HumanSize formats n bytes using binary units.
func HumanSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
