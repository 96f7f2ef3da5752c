// Package mapper copies same-named fields between stored records and the
// input and view objects built from them.
package mapper

import (
	"fmt"

	"github.com/jinzhu/copier"
)

// Mapper copies fields from src into dst. dst may be a fresh value or an
// existing record updated in place; fields absent from src are left alone.
type Mapper interface {
	Map(dst, src any) error
}

type copierMapper struct {
	option copier.Option
}

// New creates a Mapper backed by copier
func New() Mapper {
	return &copierMapper{option: copier.Option{}}
}

// Map copies src into dst
func (m *copierMapper) Map(dst, src any) error {
	if err := copier.CopyWithOption(dst, src, m.option); err != nil {
		return fmt.Errorf("failed to map %T to %T: %w", src, dst, err)
	}
	return nil
}
