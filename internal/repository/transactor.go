package repository

import (
	"context"

	"gorm.io/gorm"
)

// TxRepositories bundles the repositories taking part in the enrollment
// transaction.
type TxRepositories struct {
	Courses     CourseRepository
	Enrollments EnrollmentRepository
	Payments    PaymentRepository
}

// Transactor runs a function whose writes are committed or rolled back as
// a unit.
type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repos TxRepositories) error) error
}

type gormTransactor struct {
	db *gorm.DB
}

// NewTransactor creates a Transactor backed by GORM transactions.
func NewTransactor(db *gorm.DB) Transactor {
	return &gormTransactor{db: db}
}

// WithTransaction executes fn inside a database transaction, handing it
// repositories bound to that transaction.
func (t *gormTransactor) WithTransaction(ctx context.Context, fn func(ctx context.Context, repos TxRepositories) error) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, TxRepositories{
			Courses:     NewCourseRepository(tx),
			Enrollments: NewEnrollmentRepository(tx),
			Payments:    NewPaymentRepository(tx),
		})
	})
}
