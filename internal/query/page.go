package query

import (
	"math"
	"net/url"
	"strconv"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-api/internal/apperr"
)

type Page struct {
	Number int
	Size   int
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// Scope restricts a read to the page window.
func (p Page) Scope(db *gorm.DB) *gorm.DB {
	return db.Offset(p.Offset()).Limit(p.Size)
}

// ParsePage reads "page" (1-based) and "page_size"; sizes above max are clamped.
func ParsePage(values url.Values, defaultSize, maxSize int) (Page, error) {
	p := Page{Number: 1, Size: defaultSize}
	verr := apperr.NewValidation()

	if raw := values.Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			verr.Add("page", "Invalid page.")
		} else {
			p.Number = n
		}
	}

	if raw := values.Get("page_size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			verr.Add("page_size", "Enter a positive whole number.")
		} else {
			p.Size = n
		}
	}

	if maxSize > 0 && p.Size > maxSize {
		p.Size = maxSize
	}

	// The offset must stay representable.
	if p.Size > 0 && p.Number-1 > math.MaxInt/p.Size {
		verr.Add("page", "Invalid page.")
		p.Number = 1
	}

	return p, verr.Err()
}
