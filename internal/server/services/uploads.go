package services

import (
	"context"
	"crypto/sha1"
	"database/sql"
	"encoding/hex"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/filehost/internal/common"
	"github.com/dmitrijs2005/filehost/internal/server/models"
	"github.com/dmitrijs2005/filehost/internal/server/repositories/repomanager"
)

// Presigner mints time-limited upload URLs for object keys.
type Presigner interface {
	PresignPut(ctx context.Context, key, contentType string, ttl time.Duration) (string, error)
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// GenerateFileKey derives the storage key for an upload:
// "{userID}/{sha1hex}.{ext}". The hash covers the user id, the sanitized
// file name and the current time in milliseconds. ext is the text after
// the last dot of the sanitized name, or the whole name when there is none.
func GenerateFileKey(userID int64, filename string, now time.Time) string {
	sanitized := unsafeFilenameChars.ReplaceAllString(filename, "_")

	sum := sha1.Sum([]byte(fmt.Sprintf("%d-%s-%d", userID, sanitized, now.UnixMilli())))

	ext := sanitized
	if i := strings.LastIndex(sanitized, "."); i >= 0 {
		ext = sanitized[i+1:]
	}

	return strconv.FormatInt(userID, 10) + "/" + hex.EncodeToString(sum[:]) + "." + ext
}

type UploadService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	presigner   Presigner
	urlTTL      time.Duration
	now         func() time.Time
}

func NewUploadService(db *sql.DB, m repomanager.RepositoryManager, p Presigner, urlTTL time.Duration) *UploadService {
	return &UploadService{
		db:          db,
		repomanager: m,
		presigner:   p,
		urlTTL:      urlTTL,
		now:         time.Now,
	}
}

// RequestUpload reserves a key for filename and returns a URL the client
// can PUT the bytes to. Nothing is recorded until ConfirmUpload.
func (s *UploadService) RequestUpload(ctx context.Context, userID int64, filename, contentType string) (*models.UploadTicket, error) {
	if filename == "" {
		return nil, common.ErrorValidation
	}

	key := GenerateFileKey(userID, filename, s.now())

	url, err := s.presigner.PresignPut(ctx, key, contentType, s.urlTTL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}

	return &models.UploadTicket{
		UploadURL: url,
		Key:       key,
		ExpiresIn: int64(s.urlTTL / time.Second),
	}, nil
}

// ConfirmUpload records a finished upload. The object at key is not
// checked; the record reflects what the client reports.
func (s *UploadService) ConfirmUpload(ctx context.Context, userID int64, filename string, size int64, key string) (*models.File, error) {
	if filename == "" || size <= 0 || key == "" {
		return nil, common.ErrorValidation
	}

	file, err := s.repomanager.Files(s.db).Create(ctx, &models.File{
		Name:       filename,
		Size:       size,
		Key:        key,
		UploadedAt: s.now().UTC(),
		OwnerID:    userID,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}

	return file, nil
}
