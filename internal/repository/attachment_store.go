package repository

import (
	"context"
	"errors"
	"io"
)

var (
	// ポリシー上限を超えたファイル
	ErrAttachmentTooLarge = errors.New("attachment too large")
	// 許可されていない拡張子
	ErrAttachmentType = errors.New("unsupported attachment type")
)

// 支払い証明ファイルの保存。保存先の詳細は隠し、
// 後で取得に使える参照（ファイル名）だけを返す。
type AttachmentStore interface {
	Save(ctx context.Context, originalName string, r io.Reader) (ref string, err error)
}
