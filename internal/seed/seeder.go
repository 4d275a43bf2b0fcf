package seed

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/campus-helpdesk/internal/auth"
	"github.com/spec-kit/campus-helpdesk/internal/config"
	"github.com/spec-kit/campus-helpdesk/internal/domain"
	"github.com/spec-kit/campus-helpdesk/internal/repository"
)

// Seeder populates an empty store with demo accounts and sample tickets so the
// application is usable immediately after first start.
type Seeder struct {
	users   repository.UserRepository
	tickets repository.TicketRepository
	cfg     config.AuthConfig
	logger  *zap.Logger
}

func NewSeeder(users repository.UserRepository, tickets repository.TicketRepository, cfg config.AuthConfig, logger *zap.Logger) *Seeder {
	return &Seeder{users: users, tickets: tickets, cfg: cfg, logger: logger}
}

type seedUser struct {
	username string
	email    string
	name     string
	password string
	role     domain.Role
}

type seedTicket struct {
	title       string
	description string
	priority    domain.TicketPriority
	category    string
	createdBy   string // username
	assignedTo  string // username, empty for unassigned
}

var seedUsers = []seedUser{
	{"admin", "admin@campus.edu", "System Administrator", "admin123", domain.RoleAdmin},
	{"staff1", "staff1@campus.edu", "Dana Reyes", "staff123", domain.RoleStaff},
	{"staff2", "staff2@campus.edu", "Omar Haddad", "staff123", domain.RoleStaff},
	{"student1", "student1@campus.edu", "Mia Chen", "student123", domain.RoleStudent},
	{"student2", "student2@campus.edu", "Leo Novak", "student123", domain.RoleStudent},
	{"student3", "student3@campus.edu", "Ana Costa", "student123", domain.RoleStudent},
}

var seedTickets = []seedTicket{
	{"WiFi not working in dorm B", "No connectivity since last night on floors 2 and 3.", domain.TicketPriorityHigh, "Technical", "student1", "staff1"},
	{"Air conditioning broken in library", "Reading room on the first floor is far too hot.", domain.TicketPriorityMedium, "Facilities", "student2", "staff2"},
	{"Cannot register for CS301", "Registration portal rejects my enrollment with no message.", domain.TicketPriorityHigh, "Academic", "student1", ""},
	{"Parking permit not recognized", "The lot C gate does not accept my new permit.", domain.TicketPriorityLow, "Facilities", "student3", ""},
	{"Missing grade for MATH210", "Final grade still not posted three weeks after the exam.", domain.TicketPriorityMedium, "Academic", "student2", ""},
}

// Run seeds the store. It is idempotent: if any user already exists, the whole
// run is skipped.
func (s *Seeder) Run(ctx context.Context) error {
	existing, err := s.users.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("seed: checking existing users: %w", err)
	}
	if len(existing) > 0 {
		s.logger.Info("seed skipped, users already present", zap.Int("users", len(existing)))
		return nil
	}

	idsByUsername := make(map[string]string, len(seedUsers))
	for _, su := range seedUsers {
		hash, err := auth.HashPassword(su.password, s.cfg.BcryptCost)
		if err != nil {
			return fmt.Errorf("seed: hashing password for %s: %w", su.username, err)
		}
		user := &domain.User{
			Username:     su.username,
			Email:        su.email,
			Name:         su.name,
			PasswordHash: hash,
			Role:         su.role,
		}
		if err := s.users.Create(ctx, user); err != nil {
			return fmt.Errorf("seed: creating user %s: %w", su.username, err)
		}
		idsByUsername[su.username] = user.ID
	}

	for _, st := range seedTickets {
		ticket := &domain.Ticket{
			Title:       st.title,
			Description: st.description,
			Priority:    st.priority,
			Status:      domain.TicketStatusOpen,
			Category:    st.category,
			CreatedBy:   idsByUsername[st.createdBy],
		}
		if st.assignedTo != "" {
			assignee := idsByUsername[st.assignedTo]
			ticket.AssignedTo = &assignee
		}
		if err := s.tickets.Create(ctx, ticket); err != nil {
			return fmt.Errorf("seed: creating ticket %q: %w", st.title, err)
		}
	}

	s.logger.Info("seed completed",
		zap.Int("users", len(seedUsers)),
		zap.Int("tickets", len(seedTickets)))
	return nil
}
