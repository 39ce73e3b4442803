package services

import (
	"context"
	"fmt"
	"strings"

	"learnhub/models"
	"learnhub/repository"
)

type CertificationService struct {
	certifications repository.CertificationRepo
}

func NewCertificationService(certifications repository.CertificationRepo) *CertificationService {
	return &CertificationService{certifications: certifications}
}

func (s *CertificationService) Add(ctx context.Context, cert *models.Certification) (*models.Certification, error) {
	if cert.Name == "" || cert.Organization == "" {
		return nil, fmt.Errorf("%w: certification name and organization are required", ErrValidation)
	}
	if err := s.certifications.Insert(ctx, cert); err != nil {
		return nil, err
	}
	return cert, nil
}

func (s *CertificationService) GetByUser(ctx context.Context, userID string) ([]models.Certification, error) {
	return s.certifications.FindByUser(ctx, userID)
}

// Search filters a user's certifications by name, organization or
// issue date substring, case-insensitive.
func (s *CertificationService) Search(ctx context.Context, userID, query string) ([]models.Certification, error) {
	certs, err := s.certifications.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(query)
	matched := make([]models.Certification, 0, len(certs))
	for _, cert := range certs {
		if strings.Contains(strings.ToLower(cert.Name), query) ||
			strings.Contains(strings.ToLower(cert.Organization), query) ||
			strings.Contains(cert.IssueDate, query) {
			matched = append(matched, cert)
		}
	}
	return matched, nil
}

func (s *CertificationService) Update(ctx context.Context, id string, updated *models.Certification) (*models.Certification, error) {
	existing, err := s.certifications.FindByID(ctx, id)
	if err != nil {
		if err == repository.ErrNoDocument {
			return nil, fmt.Errorf("%w: certification not found", ErrNotFound)
		}
		return nil, err
	}

	existing.Name = updated.Name
	existing.Organization = updated.Organization
	existing.IssueDate = updated.IssueDate
	existing.ExpiryDate = updated.ExpiryDate
	existing.CredentialID = updated.CredentialID
	existing.CredentialURL = updated.CredentialURL
	existing.Skills = updated.Skills
	existing.CertificateImageURL = updated.CertificateImageURL

	if err := s.certifications.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *CertificationService) Delete(ctx context.Context, id string) error {
	err := s.certifications.Delete(ctx, id)
	if err == repository.ErrNoDocument {
		return fmt.Errorf("%w: certification not found", ErrNotFound)
	}
	return err
}

func (s *CertificationService) GetAll(ctx context.Context) ([]models.Certification, error) {
	return s.certifications.FindAll(ctx)
}
