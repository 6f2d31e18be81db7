package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"Reelist/models"
)

var validate = validator.New()

// SearchForm is the external search query form.
type SearchForm struct {
	Title string `validate:"required"`
}

// AddMovieForm is the manual creation form, every field required.
// The raw string fields keep what the user typed so an invalid
// submission re-renders unchanged.
type AddMovieForm struct {
	Title       string  `validate:"required"`
	Year        int     `validate:"required"`
	Description string  `validate:"required"`
	Rating      float64 `validate:"required"`
	Review      string  `validate:"required"`
	ImgURL      string  `validate:"required"`

	YearRaw   string `validate:"-"`
	RatingRaw string `validate:"-"`
}

// UpdateForm is the partial edit form, every field optional. A nil
// field means the input was left blank and the stored value stays.
type UpdateForm struct {
	Title       *string
	Year        *int
	Description *string
	Rating      *float64
	Review      *string
	ImgURL      *string

	YearRaw   string
	RatingRaw string
}

// Fields converts the form into the storage-level partial update.
func (f UpdateForm) Fields() models.MovieUpdate {
	return models.MovieUpdate{
		Title:       f.Title,
		Year:        f.Year,
		Description: f.Description,
		Rating:      f.Rating,
		Review:      f.Review,
		ImgURL:      f.ImgURL,
	}
}

func ParseSearchForm(r *http.Request) (SearchForm, map[string]string) {
	f := SearchForm{Title: strings.TrimSpace(r.FormValue("title"))}
	return f, ValidateForm(f)
}

func ParseAddMovieForm(r *http.Request) (AddMovieForm, map[string]string) {
	f := AddMovieForm{
		Title:       strings.TrimSpace(r.FormValue("title")),
		Description: strings.TrimSpace(r.FormValue("description")),
		Review:      strings.TrimSpace(r.FormValue("review")),
		ImgURL:      strings.TrimSpace(r.FormValue("img_url")),
		YearRaw:     strings.TrimSpace(r.FormValue("year")),
		RatingRaw:   strings.TrimSpace(r.FormValue("rating")),
	}

	errs := map[string]string{}
	if f.YearRaw != "" {
		year, err := strconv.Atoi(f.YearRaw)
		if err != nil {
			errs["Year"] = "Must be a whole number"
		} else {
			f.Year = year
		}
	}
	if f.RatingRaw != "" {
		rating, err := strconv.ParseFloat(f.RatingRaw, 64)
		if err != nil {
			errs["Rating"] = "Must be a number"
		} else {
			f.Rating = rating
		}
	}

	for field, msg := range ValidateForm(f) {
		if _, taken := errs[field]; !taken {
			errs[field] = msg
		}
	}

	if len(errs) == 0 {
		return f, nil
	}
	return f, errs
}

func ParseUpdateForm(r *http.Request) (UpdateForm, map[string]string) {
	f := UpdateForm{
		YearRaw:   strings.TrimSpace(r.FormValue("year")),
		RatingRaw: strings.TrimSpace(r.FormValue("rating")),
	}

	if v := strings.TrimSpace(r.FormValue("title")); v != "" {
		f.Title = &v
	}
	if v := strings.TrimSpace(r.FormValue("description")); v != "" {
		f.Description = &v
	}
	if v := strings.TrimSpace(r.FormValue("review")); v != "" {
		f.Review = &v
	}
	if v := strings.TrimSpace(r.FormValue("img_url")); v != "" {
		f.ImgURL = &v
	}

	errs := map[string]string{}
	if f.YearRaw != "" {
		year, err := strconv.Atoi(f.YearRaw)
		if err != nil {
			errs["Year"] = "Must be a whole number"
		} else {
			f.Year = &year
		}
	}
	if f.RatingRaw != "" {
		rating, err := strconv.ParseFloat(f.RatingRaw, 64)
		if err != nil {
			errs["Rating"] = "Must be a number"
		} else {
			f.Rating = &rating
		}
	}

	if len(errs) == 0 {
		return f, nil
	}
	return f, errs
}

// ValidateForm runs struct validation and maps failures to per-field
// messages keyed by struct field name.
func ValidateForm(data any) map[string]string {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	errs := make(map[string]string)
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, fe := range validationErrors {
			errs[fe.Field()] = fieldErrorMessage(fe)
		}
	}
	return errs
}

func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "min":
		return fmt.Sprintf("Minimum length is %s", fe.Param())
	case "max":
		return fmt.Sprintf("Maximum length is %s", fe.Param())
	default:
		return fmt.Sprintf("Invalid %s field", fe.Field())
	}
}
