package content

import (
	"context"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"portfolio/internal/domain"
)

const dateLayout = "2006-01-02"

func (s *Service) ListCertificates(ctx context.Context) ([]domain.Certificate, error) {
	certs, err := s.certificates.List(ctx)
	if err != nil {
		return nil, storageErr("list certificates", err)
	}
	return certs, nil
}

func (s *Service) GetCertificate(ctx context.Context, id int64) (*domain.Certificate, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	c, err := s.certificates.GetByID(ctx, id)
	if err != nil {
		return nil, storageErr("get certificate", err)
	}
	return c, nil
}

func (s *Service) AddCertificate(ctx context.Context, req CertificateRequest, newPDFPath *string) (int64, error) {
	c, err := certificateFromRequest(req)
	if err != nil {
		return 0, err
	}
	c.PDFPath = newPDFPath

	if err := s.certificates.Create(ctx, c); err != nil {
		return 0, storageErr("add certificate", err)
	}
	s.record(ctx, ActionCertificateAdd, "Added certificate: "+c.Title)
	return c.ID, nil
}

// UpdateCertificate recomputes the duration from the submitted dates and
// keeps the stored PDF unless newPDFPath is set.
func (s *Service) UpdateCertificate(ctx context.Context, id int64, req CertificateRequest, newPDFPath *string) error {
	if err := checkID(id); err != nil {
		return err
	}
	c, err := certificateFromRequest(req)
	if err != nil {
		return err
	}
	c.ID = id
	c.PDFPath = newPDFPath

	if err := s.certificates.Update(ctx, c, newPDFPath != nil); err != nil {
		return storageErr("update certificate", err)
	}
	s.record(ctx, ActionCertificateUpdate, fmt.Sprintf("Updated certificate ID: %d", id))
	return nil
}

func (s *Service) DeleteCertificate(ctx context.Context, id int64) error {
	if err := checkID(id); err != nil {
		return err
	}
	if err := s.certificates.Delete(ctx, id); err != nil {
		return storageErr("delete certificate", err)
	}
	s.record(ctx, ActionCertificateDelete, fmt.Sprintf("Deleted certificate ID: %d", id))
	return nil
}

func certificateFromRequest(req CertificateRequest) (*domain.Certificate, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	from, err := time.Parse(dateLayout, req.FromDate)
	if err != nil {
		return nil, invalid("from_date", "datetime")
	}
	to, err := time.Parse(dateLayout, req.ToDate)
	if err != nil {
		return nil, invalid("to_date", "datetime")
	}
	if to.Before(from) {
		return nil, invalid("to_date", "gtefield")
	}

	return &domain.Certificate{
		Title:           req.Title,
		Issuer:          req.Issuer,
		FromDate:        datatypes.Date(from),
		ToDate:          datatypes.Date(to),
		Duration:        Duration(from, to),
		VerificationURL: req.VerificationURL,
		DisplayOrder:    req.DisplayOrder,
	}, nil
}
