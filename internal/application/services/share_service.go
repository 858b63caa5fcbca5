package services

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/pageforge/pageforge-go/internal/domain/entities/content"
	"github.com/pageforge/pageforge-go/internal/domain/repositories"
	"github.com/pageforge/pageforge-go/internal/infrastructure/email"
	"github.com/pageforge/pageforge-go/internal/infrastructure/observability/logging"
	"github.com/pageforge/pageforge-go/internal/infrastructure/security"
	"github.com/pageforge/pageforge-go/pkg/config"
)

// ShareService emails links to generated pages and records each share.
type ShareService struct {
	shareRepo repositories.ShareRepository
	pageRepo  repositories.PageRepository
	emailSvc  email.Service
	logger    *logging.ChanneledLogger
}

// NewShareService creates a new share application service
func NewShareService(shareRepo repositories.ShareRepository, pageRepo repositories.PageRepository, emailSvc email.Service, logger *logging.ChanneledLogger) *ShareService {
	return &ShareService{
		shareRepo: shareRepo,
		pageRepo:  pageRepo,
		emailSvc:  emailSvc,
		logger:    logger,
	}
}

// SharePage sends a recipient the public URL of a generated page.
func (s *ShareService) SharePage(pageID, recipient, senderNote string) (*content.ShareNode, error) {
	if !config.SharingEnabled {
		return nil, fmt.Errorf("page sharing is disabled")
	}
	if s.emailSvc == nil {
		return nil, fmt.Errorf("email delivery is not configured")
	}
	if _, err := mail.ParseAddress(recipient); err != nil {
		return nil, fmt.Errorf("invalid recipient address %q", recipient)
	}

	node, err := s.pageRepo.FindByID(pageID)
	if err != nil {
		return nil, fmt.Errorf("failed to get page %s: %w", pageID, err)
	}
	if node == nil {
		return nil, fmt.Errorf("page %s not found", pageID)
	}

	pageURL := s.publicPageURL(node.Filename)
	if err := s.emailSvc.SendPageShareEmail(recipient, node.Title, pageURL, senderNote); err != nil {
		s.logger.Email().Error("Failed to send share email", "pageId", pageID, "error", err)
		return nil, fmt.Errorf("failed to send share email: %w", err)
	}

	share := &content.ShareNode{
		ID:        security.GenerateULID(),
		PageID:    pageID,
		Recipient: recipient,
		Created:   time.Now().UTC(),
	}
	if err := s.shareRepo.Store(share); err != nil {
		// The email already went out; losing the record is not fatal.
		s.logger.Email().Warn("Failed to record page share", "pageId", pageID, "error", err)
	}

	s.logger.Email().Info("Page shared", "pageId", pageID, "recipient", recipient)
	return share, nil
}

// ListShares returns the share history of a page
func (s *ShareService) ListShares(pageID string) ([]*content.ShareNode, error) {
	if pageID == "" {
		return nil, fmt.Errorf("page ID cannot be empty")
	}
	shares, err := s.shareRepo.FindByPageID(pageID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shares for page %s: %w", pageID, err)
	}
	return shares, nil
}

func (s *ShareService) publicPageURL(filename string) string {
	base := strings.TrimRight(config.PublicBaseURL, "/")
	return base + "/pages/" + ensureHTMLExtension(filename)
}
