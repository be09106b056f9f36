package gormrepo

import (
	"context"
	"errors"

	"github.com/HamletSargsyan/livebot/internal/app/ports"

	"gorm.io/gorm"
)

// Table stores one record type in one table keyed by id, listing rows per
// owner in insertion order.
type Table[T ports.Record, M any] struct {
	db      *gorm.DB
	toRow   func(T) (M, error)
	fromRow func(M) (T, error)
}

func NewTable[T ports.Record, M any](db *gorm.DB, toRow func(T) (M, error), fromRow func(M) (T, error)) Table[T, M] {
	return Table[T, M]{db: db, toRow: toRow, fromRow: fromRow}
}

func (t Table[T, M]) Get(ctx context.Context, id string) (T, error) {
	var row M
	if err := getDBFromCtx(ctx, t.db).Where("id = ?", id).First(&row).Error; err != nil {
		var zero T
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return zero, ports.ErrNotFound
		}
		return zero, err
	}
	return t.fromRow(row)
}

func (t Table[T, M]) GetAll(ctx context.Context, owner int64) ([]T, error) {
	var rows []M
	if err := getDBFromCtx(ctx, t.db).Where("owner_id = ?", owner).Order("seq").Find(&rows).Error; err != nil {
		return nil, err
	}
	return t.fromRows(rows)
}

// List pages through the rows of every owner in insertion order.
func (t Table[T, M]) List(ctx context.Context, offset, limit int) ([]T, error) {
	q := getDBFromCtx(ctx, t.db).Order("seq").Offset(offset)
	if limit > 0 {
		q = q.Limit(limit)
	}
	var rows []M
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return t.fromRows(rows)
}

func (t Table[T, M]) fromRows(rows []M) ([]T, error) {
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		rec, err := t.fromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func (t Table[T, M]) Add(ctx context.Context, rec T) error {
	row, err := t.toRow(rec)
	if err != nil {
		return err
	}
	if err := getDBFromCtx(ctx, t.db).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return ports.ErrConflict
		}
		return err
	}
	return nil
}

func (t Table[T, M]) Update(ctx context.Context, rec T) error {
	row, err := t.toRow(rec)
	if err != nil {
		return err
	}
	res := getDBFromCtx(ctx, t.db).Model(&row).Where("id = ?", rec.RecordID()).Select("*").Omit("seq").Updates(&row)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func (t Table[T, M]) Delete(ctx context.Context, id string) error {
	res := getDBFromCtx(ctx, t.db).Where("id = ?", id).Delete(new(M))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
