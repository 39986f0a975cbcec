package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"expensetracker/models"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// 占位识别结果，本服务不做真正的 OCR
const (
	placeholderText     = "Sample OCR text for demo only."
	placeholderMerchant = "Unknown"
)

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".bmp":  true,
	".heic": true,
}

// ReceiptSuggestion 预填到新增消费表单的建议值
type ReceiptSuggestion struct {
	Amount   float64
	Date     string
	Merchant string
}

// ReceiptScan 小票识别结果
type ReceiptScan struct {
	File          string
	ExtractedText string
	Suggested     ReceiptSuggestion
}

// ReceiptService 小票上传与识别（占位实现）
type ReceiptService struct {
	dir      string
	maxBytes int64
	now      func() time.Time
	newID    func() string
}

// NewReceiptService 创建小票服务，文件保存到 dir
func NewReceiptService(dir string, maxBytes int64) *ReceiptService {
	return &ReceiptService{
		dir:      dir,
		maxBytes: maxBytes,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Scan 保存上传的图片并返回占位识别结果
func (s *ReceiptService) Scan(ctx context.Context, fh *multipart.FileHeader) (*ReceiptScan, error) {
	if fh == nil || strings.TrimSpace(fh.Filename) == "" {
		return nil, ErrMissingFile
	}
	base := SanitizeFilename(fh.Filename)
	if !imageExtensions[strings.ToLower(filepath.Ext(base))] {
		return nil, invalid("receipt", "Receipt must be an image file")
	}
	if s.maxBytes > 0 && fh.Size > s.maxBytes {
		return nil, invalid("receipt", fmt.Sprintf("Receipt must be at most %d MB", s.maxBytes>>20))
	}

	name := s.newID() + "_" + base
	if err := s.save(ctx, fh, name); err != nil {
		return nil, err
	}

	return &ReceiptScan{
		File:          name,
		ExtractedText: placeholderText,
		Suggested: ReceiptSuggestion{
			Amount:   0,
			Date:     models.DateOnly(s.now().UTC()).Format(models.DateLayout),
			Merchant: placeholderMerchant,
		},
	}, nil
}

// Path 返回已保存小票的完整路径
func (s *ReceiptService) Path(name string) string {
	return filepath.Join(s.dir, filepath.Base(name))
}

func (s *ReceiptService) save(ctx context.Context, fh *multipart.FileHeader, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return errors.Wrap(err, "create upload dir")
	}

	src, err := fh.Open()
	if err != nil {
		return errors.Wrap(err, "open upload")
	}
	defer src.Close()

	dst, err := os.OpenFile(s.Path(name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return errors.Wrap(err, "create receipt file")
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return errors.Wrap(err, "write receipt file")
	}
	return errors.Wrap(dst.Close(), "close receipt file")
}

// SanitizeFilename 去掉目录部分，只保留 [A-Za-z0-9._-]
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '_', r == '-':
			b.WriteRune(r)
		}
	}
	cleaned := strings.TrimLeft(b.String(), ".")
	if cleaned == "" {
		return "receipt"
	}
	return cleaned
}
