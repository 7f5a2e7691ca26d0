package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	Request  RequestRepo
	Profile  ProfileRepo
	Document DocumentRepo
	Chat     ChatRepo
	Activity ActivityRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		Request:  NewRequestRepo(db),
		Profile:  NewProfileRepo(db),
		Document: NewDocumentRepo(db),
		Chat:     NewChatRepo(db),
		Activity: NewActivityRepo(db),
		db:       db,
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		Request:  r.Request.WithTx(tx),
		Profile:  r.Profile.WithTx(tx),
		Document: r.Document.WithTx(tx),
		Chat:     r.Chat.WithTx(tx),
		Activity: r.Activity.WithTx(tx),
		db:       tx,
	}
}

// ExecTx runs fn against a transactional copy of every repository. Without
// an underlying connection (mock setups) the callback runs on the receiver.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}
