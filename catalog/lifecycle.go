package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/upparakash/AspireBrandApi/apperror"
	"github.com/upparakash/AspireBrandApi/models"
	"github.com/upparakash/AspireBrandApi/storage"
)

// Discarder removes objects no row references any more.
type Discarder interface {
	Discard(ctx context.Context, refs ...string) []error
}

type settings struct {
	requireAttachments string
	duplicates         map[string]string
}

type Option func(*settings)

// RequireAttachments makes every attachment slot mandatory on create; msg is
// the validation message when any slot is missing.
func RequireAttachments(msg string) Option {
	return func(s *settings) { s.requireAttachments = msg }
}

// DuplicateMessages sets the client message per unique field.
func DuplicateMessages(m map[string]string) Option {
	return func(s *settings) { s.duplicates = m }
}

// Lifecycle keeps a cataloged row and its objects consistent across
// create, update and delete. Objects are uploaded before it runs; whenever
// the row write does not happen, the request's objects are discarded.
type Lifecycle[T any, P interface {
	*T
	models.Cataloged
}] struct {
	repo    Repository[T]
	janitor Discarder
	what    string
	opts    settings
}

func NewLifecycle[T any, P interface {
	*T
	models.Cataloged
}](repo Repository[T], janitor Discarder, what string, opts ...Option) *Lifecycle[T, P] {
	l := &Lifecycle[T, P]{repo: repo, janitor: janitor, what: what}
	for _, opt := range opts {
		opt(&l.opts)
	}
	return l
}

func (l *Lifecycle[T, P]) Find(ctx context.Context, id uint) (*T, error) {
	return l.repo.Find(ctx, id)
}

func (l *Lifecycle[T, P]) List(ctx context.Context) ([]T, error) {
	return l.repo.List(ctx)
}

// Create builds a new row with build, attaches the uploaded objects, checks
// uniqueness and inserts it.
func (l *Lifecycle[T, P]) Create(ctx context.Context, uploads storage.Uploads, build func(P) error) (*T, error) {
	row := new(T)
	p := P(row)

	if err := build(p); err != nil {
		return nil, l.abort(ctx, uploads, err)
	}

	var missing string
	for _, a := range p.Attachments() {
		if url, ok := uploads.Get(a.Field); ok {
			*a.Ref = url
		} else if missing == "" {
			missing = a.Field
		}
	}
	if missing != "" && l.opts.requireAttachments != "" {
		return nil, l.abort(ctx, uploads, apperror.InvalidField(missing, l.opts.requireAttachments))
	}

	if err := l.checkUnique(ctx, p, 0, nil); err != nil {
		return nil, l.abort(ctx, uploads, err)
	}
	if err := l.repo.Insert(ctx, row); err != nil {
		return nil, l.abort(ctx, uploads, err)
	}
	return row, nil
}

// Update loads row id, applies changes and replaces every slot that has a
// new upload. Superseded objects are deleted only after the row is written.
func (l *Lifecycle[T, P]) Update(ctx context.Context, id uint, uploads storage.Uploads, apply func(P) error) (*T, error) {
	row, err := l.repo.Find(ctx, id)
	if err != nil {
		return nil, l.abort(ctx, uploads, err)
	}
	p := P(row)
	before := p.UniqueKeys()

	if apply != nil {
		if err := apply(p); err != nil {
			return nil, l.abort(ctx, uploads, err)
		}
	}
	if err := l.checkUnique(ctx, p, id, before); err != nil {
		return nil, l.abort(ctx, uploads, err)
	}

	var superseded []string
	for _, a := range p.Attachments() {
		url, ok := uploads.Get(a.Field)
		if !ok {
			continue
		}
		if *a.Ref != "" && *a.Ref != url {
			superseded = append(superseded, *a.Ref)
		}
		*a.Ref = url
	}

	if err := l.repo.Update(ctx, row); err != nil {
		return nil, l.abort(ctx, uploads, err)
	}
	l.discard(ctx, superseded...)
	return row, nil
}

// Delete removes the row's objects, then the row. Objects go first so an
// interrupted delete leaves an orphaned object rather than a dangling URL.
func (l *Lifecycle[T, P]) Delete(ctx context.Context, id uint) error {
	row, err := l.repo.Find(ctx, id)
	if err != nil {
		return err
	}
	l.discard(ctx, models.Refs(P(row))...)
	return l.repo.Delete(ctx, id)
}

func (l *Lifecycle[T, P]) checkUnique(ctx context.Context, p P, excludeID uint, before []models.UniqueKey) error {
	for i, key := range p.UniqueKeys() {
		if i < len(before) && sameKey(before[i], key) {
			continue
		}
		taken, err := l.repo.Taken(ctx, key, excludeID)
		if err != nil {
			return err
		}
		if taken {
			return apperror.Duplicate(key.Field, l.duplicateMessage(key.Field))
		}
	}
	return nil
}

func (l *Lifecycle[T, P]) duplicateMessage(field string) string {
	if msg, ok := l.opts.duplicates[field]; ok {
		return msg
	}
	return fmt.Sprintf("%s with this %s already exists", l.what, field)
}

func (l *Lifecycle[T, P]) abort(ctx context.Context, uploads storage.Uploads, err error) error {
	l.discard(ctx, uploads.URLs()...)
	return err
}

func (l *Lifecycle[T, P]) discard(ctx context.Context, refs ...string) {
	if len(refs) == 0 {
		return
	}
	l.janitor.Discard(ctx, refs...)
}

func sameKey(a, b models.UniqueKey) bool {
	if a.Exact {
		return a.Value == b.Value
	}
	return strings.EqualFold(a.Value, b.Value)
}

// text trims an optional form value; nil means the field was not sent.
func text(v *string) (string, bool) {
	if v == nil {
		return "", false
	}
	return strings.TrimSpace(*v), true
}

func required(field, msg, value string) error {
	if strings.TrimSpace(value) == "" {
		return apperror.InvalidField(field, msg)
	}
	return nil
}
