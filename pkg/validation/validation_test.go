package validation_test

import (
	"errors"
	"testing"

	"muto-jobboard/internal/domain"
	"muto-jobboard/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validJobForm() domain.PostJobForm {
	return domain.PostJobForm{
		Title:        "Accountant",
		Company:      "Muto Consults",
		Location:     "Kampala",
		Type:         domain.JobTypeFullTime,
		Description:  "Keep the books.",
		Requirements: "CPA",
		Deadline:     "2026-12-01",
	}
}

func TestPostJobFormValidation(t *testing.T) {
	v := validation.New()

	t.Run("valid form passes", func(t *testing.T) {
		assert.NoError(t, v.Struct(validJobForm()))
	})

	t.Run("placeholder type is rejected", func(t *testing.T) {
		form := validJobForm()
		form.Type = ""
		fields := validation.FieldErrors(v.Struct(form))
		assert.Equal(t, "Employment type is required", fields["type"])
	})

	t.Run("unknown type is rejected", func(t *testing.T) {
		form := validJobForm()
		form.Type = "Freelance"
		fields := validation.FieldErrors(v.Struct(form))
		assert.Equal(t, "Employment type must be one of: Full-time, Part-time, Contract, Internship", fields["type"])
	})

	t.Run("deadline is required and must be a date", func(t *testing.T) {
		form := validJobForm()
		form.Deadline = ""
		assert.Equal(t, "Deadline is required", validation.FieldErrors(v.Struct(form))["deadline"])

		form.Deadline = "01/12/2026"
		assert.Contains(t, validation.FieldErrors(v.Struct(form))["deadline"], "YYYY-MM-DD")
	})

	t.Run("salary range is optional", func(t *testing.T) {
		form := validJobForm()
		form.SalaryRange = ""
		assert.NoError(t, v.Struct(form))
	})

	t.Run("status is never validated", func(t *testing.T) {
		form := validJobForm()
		form.Status = "closed"
		assert.NoError(t, v.Struct(form))
	})
}

func TestApplicationFormValidation(t *testing.T) {
	v := validation.New()

	fields := validation.FieldErrors(v.Struct(domain.ApplicationForm{ResumeURL: "not a url", CoverLetter: "   "}))
	require.Len(t, fields, 2)
	assert.Equal(t, "Resume URL must be an http(s) link", fields["resume_url"])
	assert.Equal(t, "Cover letter is required", fields["cover_letter"])

	assert.NoError(t, v.Struct(domain.ApplicationForm{
		ResumeURL:   "https://drive.google.com/my-resume",
		CoverLetter: "Hello",
	}))
	assert.NoError(t, v.Struct(domain.ApplicationForm{
		ResumeURL:   "http://example.com/cv.pdf",
		CoverLetter: "Hello",
	}))

	for _, link := range []string{
		"javascript:alert(document.cookie)",
		"data:text/html,<script>x</script>",
		"mailto:a@b.c",
		"ftp://x/y",
	} {
		fields := validation.FieldErrors(v.Struct(domain.ApplicationForm{ResumeURL: link, CoverLetter: "hi"}))
		assert.Equal(t, "Resume URL must be an http(s) link", fields["resume_url"], "resume link %q", link)
	}
}

func TestProfileFormValidation(t *testing.T) {
	v := validation.New()

	fields := validation.FieldErrors(v.Struct(domain.ProfileForm{Email: "nope", Phone: "12ab"}))
	assert.Equal(t, "Full name is required", fields["full_name"])
	assert.Equal(t, "Email must be a valid email address", fields["email"])
	assert.Contains(t, fields["phone"], "7-15 digits")

	assert.NoError(t, v.Struct(domain.ProfileForm{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "+256 701 045118",
	}))
}

func TestFieldErrorsIgnoresOtherErrors(t *testing.T) {
	assert.Nil(t, validation.FieldErrors(errors.New("boom")))
	assert.Nil(t, validation.FieldErrors(nil))
}
