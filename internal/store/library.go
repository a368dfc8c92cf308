package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/dungeonquiz/internal/catalog"
)

// ErrNotFound is returned when a pack is not in the library.
var ErrNotFound = errors.New("not found")

// Library serves published packs out of the store. It satisfies
// catalog.Source; index order is publish order.
type Library struct {
	db *sql.DB
}

var _ catalog.Source = (*Library)(nil)

// Publish stores content under desc. Re-publishing an id replaces the
// descriptor and content but keeps the pack's position in the index.
func (l *Library) Publish(ctx context.Context, desc catalog.Descriptor, content []byte) error {
	if desc.ID == "" {
		return errors.New("publish: pack id is required")
	}
	if desc.File == "" {
		desc.File = desc.ID + ".json"
	}
	if err := desc.Stage().Validate(); err != nil {
		return fmt.Errorf("publish %s: %w", desc.ID, err)
	}

	_, err := l.db.ExecContext(ctx, `
		INSERT INTO packs (id, grade, term, phase, dungeon, title, file, content, published_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			grade = excluded.grade,
			term = excluded.term,
			phase = excluded.phase,
			dungeon = excluded.dungeon,
			title = excluded.title,
			file = excluded.file,
			content = excluded.content,
			published_at = excluded.published_at`,
		desc.ID, desc.Grade, desc.Term, string(desc.Phase), desc.Dungeon, desc.Title,
		desc.File, content, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("publish %s: %w", desc.ID, err)
	}
	return nil
}

// Remove deletes the pack with the given id.
func (l *Library) Remove(ctx context.Context, id string) error {
	res, err := l.db.ExecContext(ctx, `DELETE FROM packs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("remove %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("remove %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("remove %s: %w", id, ErrNotFound)
	}
	return nil
}

func (l *Library) Index(ctx context.Context) (*catalog.Index, error) {
	rows, err := l.db.QueryContext(ctx, `
		SELECT id, grade, term, phase, dungeon, title, file
		FROM packs ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("query packs: %w", err)
	}
	defer rows.Close()

	idx := &catalog.Index{Packs: []catalog.Descriptor{}}
	for rows.Next() {
		var d catalog.Descriptor
		var phase string
		if err := rows.Scan(&d.ID, &d.Grade, &d.Term, &phase, &d.Dungeon, &d.Title, &d.File); err != nil {
			return nil, fmt.Errorf("scan pack: %w", err)
		}
		d.Phase = catalog.Phase(phase)
		idx.Packs = append(idx.Packs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate packs: %w", err)
	}
	return idx, nil
}

func (l *Library) Pack(ctx context.Context, file string) ([]byte, error) {
	var content []byte
	err := l.db.QueryRowContext(ctx, `SELECT content FROM packs WHERE file = ?`, file).Scan(&content)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("pack %s: %w", file, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", file, err)
	}
	return content, nil
}
