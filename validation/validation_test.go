package validation

import (
	"mime/multipart"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestStructCollectsAllViolations(t *testing.T) {
	errs := Struct(PostCreate{})

	require.NotNil(t, errs)
	for _, field := range []string{"title", "content", "gambar", "author", "tahun"} {
		assert.Contains(t, errs, field)
	}
	assert.Contains(t, errs["title"], "the title field is required")
}

func TestStructPassesValidInput(t *testing.T) {
	errs := Struct(PostCreate{
		Title:   "A",
		Content: "B",
		Gambar:  "x",
		Author:  "C",
		Tahun:   intPtr(2024),
	})
	assert.Nil(t, errs)
}

func TestStructMaxLength(t *testing.T) {
	errs := Struct(PostCreate{
		Title:   strings.Repeat("a", 256),
		Content: "B",
		Gambar:  "x",
		Author:  "C",
		Tahun:   intPtr(2024),
	})

	require.Contains(t, errs, "title")
	assert.Contains(t, errs["title"], "the title must not be greater than 255 characters")
}

func TestUpdateSkipsOmittedFields(t *testing.T) {
	// Every field absent: nothing to validate, nothing to write.
	assert.Nil(t, Struct(PostUpdate{}))
	assert.Empty(t, PostUpdate{}.Fields())
}

func TestUpdatePresentButEmptyFieldFails(t *testing.T) {
	errs := Struct(PostUpdate{Title: strPtr("")})
	require.Contains(t, errs, "title")
}

func TestUpdateFieldsOnlyIncludesSupplied(t *testing.T) {
	fields := PostUpdate{
		Title: strPtr("New"),
		Tahun: intPtr(2020),
	}.Fields()

	assert.Equal(t, map[string]interface{}{
		"title": "New",
		"tahun": 2020,
	}, fields)
}

func TestRegisterEmailFormat(t *testing.T) {
	errs := Struct(Register{
		Name:            "Budi",
		Email:           "not-an-email",
		Password:        "abcdefgh",
		PasswordConfirm: "abcdefgh",
	})

	require.Contains(t, errs, "email")
	assert.Contains(t, errs["email"], "the email must be a valid email address")
}

func TestRegisterShortPassword(t *testing.T) {
	errs := Struct(Register{
		Name:            "Budi",
		Email:           "budi@example.com",
		Password:        "short",
		PasswordConfirm: "short",
	})

	require.Contains(t, errs, "password")
	assert.Contains(t, errs["password"], "the password must be at least 8 characters")
}

func TestDecodeJSONTypeMismatch(t *testing.T) {
	var in PostCreate
	errs := DecodeJSON(strings.NewReader(`{"tahun":"dua ribu"}`), &in)

	require.Contains(t, errs, "tahun")
	assert.Contains(t, errs["tahun"], "the tahun must be an integer")
}

func TestDecodeJSONStringForIntField(t *testing.T) {
	var in PostCreate
	errs := DecodeJSON(strings.NewReader(`{"title":123}`), &in)

	require.Contains(t, errs, "title")
	assert.Contains(t, errs["title"], "the title must be a string")
}

func TestDecodeJSONEmptyBody(t *testing.T) {
	var in PostCreate
	assert.Nil(t, DecodeJSON(strings.NewReader(""), &in))
}

func TestDecodeJSONMalformed(t *testing.T) {
	var in PostCreate
	errs := DecodeJSON(strings.NewReader("{not json"), &in)
	assert.Contains(t, errs, "payload")
}

func TestImageAllowedExtension(t *testing.T) {
	fh := &multipart.FileHeader{Filename: "foto.PNG", Size: 1024}
	assert.Nil(t, Image("gambar", fh))
}

func TestImageDisallowedExtension(t *testing.T) {
	fh := &multipart.FileHeader{Filename: "notes.txt", Size: 1024}
	errs := Image("gambar", fh)
	require.Contains(t, errs, "gambar")
}

func TestImageTooLarge(t *testing.T) {
	fh := &multipart.FileHeader{Filename: "foto.png", Size: MaxImageBytes + 1}
	errs := Image("gambar", fh)
	require.Contains(t, errs, "gambar")
	assert.Contains(t, errs["gambar"], "the gambar must not be greater than 2048 kilobytes")
}

func TestErrorsMerge(t *testing.T) {
	a := Errors{"title": {"first"}}
	a.Merge(Errors{"title": {"second"}, "author": {"third"}})

	assert.Equal(t, []string{"first", "second"}, a["title"])
	assert.Equal(t, []string{"third"}, a["author"])
}
