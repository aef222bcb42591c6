package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	repo "app/internal/repository"

	"github.com/google/uuid"
)

// 保存ポリシー。ゼロ値は「制限なし・全拡張子許可」。
type Policy struct {
	MaxBytes    int64
	AllowedExts []string // ".jpg"のようにドット付き小文字
}

// 支払い証明をローカルディスクに保存するAttachmentStore実装。
type DiskStore struct {
	dir    string
	policy Policy
}

func NewDiskStore(dir string, policy Policy) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskStore{dir: dir, policy: policy}, nil
}

// 衝突しない名前（unixミリ秒 + uuid + 元の拡張子）で保存し、
// 参照として使うファイル名を返す。
func (s *DiskStore) Save(ctx context.Context, originalName string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !s.extAllowed(ext) {
		return "", repo.ErrAttachmentType
	}

	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), ext)
	path := filepath.Join(s.dir, name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", err
	}

	src := r
	if s.policy.MaxBytes > 0 {
		// 上限+1まで読んで超過を検出する
		src = io.LimitReader(r, s.policy.MaxBytes+1)
	}

	written, err := io.Copy(f, src)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return "", err
	}

	if s.policy.MaxBytes > 0 && written > s.policy.MaxBytes {
		_ = os.Remove(path)
		return "", repo.ErrAttachmentTooLarge
	}

	return name, nil
}

func (s *DiskStore) extAllowed(ext string) bool {
	if len(s.policy.AllowedExts) == 0 {
		return true
	}
	for _, a := range s.policy.AllowedExts {
		if ext == a {
			return true
		}
	}
	return false
}
