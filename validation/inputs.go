package validation

// Per-operation input structs. Create inputs carry the full required rule set;
// update inputs use pointer fields so an omitted field is skipped entirely and
// excluded from the sanitized record (partial update semantics). A field that
// is present but empty still fails its rules.

// PostCreate is the rule set for creating a post.
type PostCreate struct {
	Title   string `json:"title" validate:"required,max=255"`
	Content string `json:"content" validate:"required"`
	Gambar  string `json:"gambar" validate:"required"`
	Author  string `json:"author" validate:"required,max=100"`
	Tahun   *int   `json:"tahun" validate:"required"`
}

// PostUpdate is the all-optional rule set for partial post updates.
type PostUpdate struct {
	Title   *string `json:"title" validate:"omitnil,min=1,max=255"`
	Content *string `json:"content" validate:"omitnil,min=1"`
	Gambar  *string `json:"gambar" validate:"omitnil,min=1"`
	Author  *string `json:"author" validate:"omitnil,min=1,max=100"`
	Tahun   *int    `json:"tahun"`
}

// Fields returns the sanitized record: only the fields supplied in the request.
func (u PostUpdate) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if u.Title != nil {
		fields["title"] = *u.Title
	}
	if u.Content != nil {
		fields["content"] = *u.Content
	}
	if u.Gambar != nil {
		fields["gambar"] = *u.Gambar
	}
	if u.Author != nil {
		fields["author"] = *u.Author
	}
	if u.Tahun != nil {
		fields["tahun"] = *u.Tahun
	}
	return fields
}

// CategoryCreate is the rule set for creating a category.
type CategoryCreate struct {
	Title string `json:"title" validate:"required,max=255"`
}

// CategoryUpdate is the all-optional rule set for partial category updates.
type CategoryUpdate struct {
	Title *string `json:"title" validate:"omitnil,min=1,max=255"`
}

// Fields returns the sanitized record for a category update.
func (u CategoryUpdate) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if u.Title != nil {
		fields["title"] = *u.Title
	}
	return fields
}

// Register is the rule set for account registration. Email uniqueness is
// checked against the user store by the handler and reported on this field.
type Register struct {
	Name            string `json:"name" validate:"required,max=100"`
	Email           string `json:"email" validate:"required,email,max=150"`
	Password        string `json:"password" validate:"required,min=8"`
	PasswordConfirm string `json:"password_confirm" validate:"required,min=8"`
}

// Login is the rule set for credential login.
type Login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
