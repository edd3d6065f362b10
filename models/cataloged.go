package models

// Attachment is one image slot of a cataloged row. Ref points at the model
// field holding the object URL; an empty value means the slot is unset.
type Attachment struct {
	Field string
	Ref   *string
}

// UniqueKey is a business-level unique column, compared case-insensitively
// unless Exact is set.
type UniqueKey struct {
	Column string
	Field  string
	Value  string
	Exact  bool
}

// Cataloged is implemented by every row whose images live in the object store.
type Cataloged interface {
	GetID() uint
	Attachments() []Attachment
	UniqueKeys() []UniqueKey
}

// Refs returns the non-empty attachment URLs of c.
func Refs(c Cataloged) []string {
	var refs []string
	for _, a := range c.Attachments() {
		if *a.Ref != "" {
			refs = append(refs, *a.Ref)
		}
	}
	return refs
}
