package repositories

import (
	"context"

	"gorm.io/gorm"
)

// Repos groups the repositories bound to one gorm handle, either the pool
// or an open transaction.
type Repos struct {
	Conversations ConversationRepo
	Businesses    BusinessRepo
	Messages      MessageRepo
	Dedup         DedupRepo
	Catalog       CatalogRepo
}

func NewRepos(db *gorm.DB) *Repos {
	return &Repos{
		Conversations: NewConversationRepo(db),
		Businesses:    NewBusinessRepo(db),
		Messages:      NewMessageRepo(db),
		Dedup:         NewDedupRepo(db),
		Catalog:       NewCatalogRepo(db),
	}
}

// UnitOfWork runs a function against transaction-bound repositories.
// Returning an error (or panicking) rolls everything back.
type UnitOfWork interface {
	Repos() *Repos
	Transaction(ctx context.Context, fn func(tx *Repos) error) error
}

type gormUnitOfWork struct {
	db    *gorm.DB
	repos *Repos
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &gormUnitOfWork{db: db, repos: NewRepos(db)}
}

func (u *gormUnitOfWork) Repos() *Repos {
	return u.repos
}

func (u *gormUnitOfWork) Transaction(ctx context.Context, fn func(tx *Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepos(tx))
	})
}
