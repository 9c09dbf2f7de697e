package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"backend/internal/domain/models"

	"github.com/phpdave11/gofpdf"
)

// ReportsService renders the user directory as a downloadable PDF.
type ReportsService struct {
	Store UserStore
	Now   func() time.Time
}

func (s ReportsService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s ReportsService) UserDirectoryPDF(ctx context.Context) ([]byte, string, error) {
	users, err := s.Store.GetAll(ctx)
	if err != nil {
		return nil, "", err
	}

	data, err := buildUserDirectoryPDF(users, s.now())
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("user-directory-%s.pdf", s.now().Format("20060102"))
	return data, filename, nil
}

func buildUserDirectoryPDF(users []models.User, generatedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("User Directory", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "USER DIRECTORY")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Generated %s - %d users", generatedAt.Format("2006-01-02 15:04"), len(users)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(55, 8, "Name", "1", 0, "", false, 0, "")
	pdf.CellFormat(70, 8, "Email", "1", 0, "", false, 0, "")
	pdf.CellFormat(35, 8, "Phone", "1", 0, "", false, 0, "")
	pdf.CellFormat(30, 8, "Created", "1", 1, "", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, u := range users {
		phone := u.Phone
		if phone == "" {
			phone = "-"
		}
		pdf.CellFormat(55, 7, u.FullName(), "1", 0, "", false, 0, "")
		pdf.CellFormat(70, 7, u.Email, "1", 0, "", false, 0, "")
		pdf.CellFormat(35, 7, phone, "1", 0, "", false, 0, "")
		pdf.CellFormat(30, 7, u.CreatedAt.Format("2006-01-02"), "1", 1, "", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render user directory pdf: %w", err)
	}
	return buf.Bytes(), nil
}
