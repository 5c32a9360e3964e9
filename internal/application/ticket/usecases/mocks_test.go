package usecases

import (
	"context"

	"tickethub/internal/domain/ticket"
	vo "tickethub/internal/domain/ticket/valueobjects"
	"tickethub/internal/domain/user"
	"tickethub/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc             func(ctx context.Context, t *ticket.Ticket) error
	GetByIDFunc          func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	GetByIDForUpdateFunc func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	UpdateStatusFunc     func(ctx context.Context, ticketID uint, status vo.Status) error
	UpdateAssigneeFunc   func(ctx context.Context, ticketID uint, assigneeID uint) error
	DeleteFunc           func(ctx context.Context, ticketID uint) error
	ListFunc             func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) GetByIDForUpdate(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) UpdateStatus(ctx context.Context, ticketID uint, status vo.Status) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, ticketID, status)
	}
	return nil
}

func (m *mockTicketRepository) UpdateAssignee(ctx context.Context, ticketID uint, assigneeID uint) error {
	if m.UpdateAssigneeFunc != nil {
		return m.UpdateAssigneeFunc(ctx, ticketID, assigneeID)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, ticketID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, ticketID)
	}
	return nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockCommentRepository struct {
	SaveFunc           func(ctx context.Context, c *ticket.Comment) error
	GetByIDFunc        func(ctx context.Context, commentID uint) (*ticket.Comment, error)
	ListByTicketFunc   func(ctx context.Context, ticketID uint) ([]*ticket.Comment, error)
	UpdateFunc         func(ctx context.Context, c *ticket.Comment) error
	DeleteFunc         func(ctx context.Context, commentID uint) error
	DeleteByTicketFunc func(ctx context.Context, ticketID uint) error
}

func (m *mockCommentRepository) Save(ctx context.Context, c *ticket.Comment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockCommentRepository) GetByID(ctx context.Context, commentID uint) (*ticket.Comment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, commentID)
	}
	return nil, nil
}

func (m *mockCommentRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	if m.ListByTicketFunc != nil {
		return m.ListByTicketFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockCommentRepository) Update(ctx context.Context, c *ticket.Comment) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockCommentRepository) Delete(ctx context.Context, commentID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, commentID)
	}
	return nil
}

func (m *mockCommentRepository) DeleteByTicket(ctx context.Context, ticketID uint) error {
	if m.DeleteByTicketFunc != nil {
		return m.DeleteByTicketFunc(ctx, ticketID)
	}
	return nil
}

type mockStatusLogRepository struct {
	AppendFunc         func(ctx context.Context, log *ticket.StatusLog) error
	ListByTicketFunc   func(ctx context.Context, ticketID uint) ([]*ticket.StatusLog, error)
	DeleteByTicketFunc func(ctx context.Context, ticketID uint) error
}

func (m *mockStatusLogRepository) Append(ctx context.Context, log *ticket.StatusLog) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, log)
	}
	return nil
}

func (m *mockStatusLogRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.StatusLog, error) {
	if m.ListByTicketFunc != nil {
		return m.ListByTicketFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockStatusLogRepository) DeleteByTicket(ctx context.Context, ticketID uint) error {
	if m.DeleteByTicketFunc != nil {
		return m.DeleteByTicketFunc(ctx, ticketID)
	}
	return nil
}

type mockUserRepository struct {
	SaveFunc          func(ctx context.Context, u *user.User) error
	FindByIDFunc      func(ctx context.Context, userID uint) (*user.User, error)
	FindByIDsFunc     func(ctx context.Context, userIDs []uint) (map[uint]*user.User, error)
	FindByEmailFunc   func(ctx context.Context, email string) (*user.User, error)
	ExistsByEmailFunc func(ctx context.Context, email string) (bool, error)
	ListFunc          func(ctx context.Context) ([]*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, userID uint) (*user.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByIDs(ctx context.Context, userIDs []uint) (map[uint]*user.User, error) {
	if m.FindByIDsFunc != nil {
		return m.FindByIDsFunc(ctx, userIDs)
	}
	return map[uint]*user.User{}, nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

func (m *mockUserRepository) List(ctx context.Context) ([]*user.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

// mockTransactor runs the function directly, without a real transaction.
type mockTransactor struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, fn)
	}
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...any)                      {}
func (nopLogger) Info(msg string, args ...any)                       {}
func (nopLogger) Warn(msg string, args ...any)                       {}
func (nopLogger) Error(msg string, args ...any)                      {}
func (nopLogger) Debugw(msg string, keysAndValues ...interface{})    {}
func (nopLogger) Infow(msg string, keysAndValues ...interface{})     {}
func (nopLogger) Warnw(msg string, keysAndValues ...interface{})     {}
func (nopLogger) Errorw(msg string, keysAndValues ...interface{})    {}
func (n nopLogger) With(args ...any) logger.Interface                { return n }
func (n nopLogger) Named(name string) logger.Interface               { return n }
