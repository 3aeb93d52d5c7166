// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package repository

import (
	"context"
	"errors"

	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/dnft/internal/domain"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/dnft/internal/repository/dao"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/pkg/outbox"
	"github.com/ecodeclub/ekit/slice"
	"gorm.io/gorm"
)

//go:generate mockgen -source=./credential.go -package=repomocks -destination=./mocks/credential.mock.go CredentialRepository
type CredentialRepository interface {
	// Create 写入凭证和铸造事件，unique 为 true 且持有人已有凭证时返回 domain.ErrAlreadyMinted
	Create(ctx context.Context, c domain.Credential, unique bool, build outbox.Builder) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Credential, error)
	FindByOwner(ctx context.Context, owner string) ([]domain.Credential, error)
	UpdateName(ctx context.Context, id int64, name string) error
	UpdateDescription(ctx context.Context, id int64, description string) error
	// UpdateLevel 乐观更新等级并写入升级事件，等级已被修改时返回 domain.ErrLevelChanged
	UpdateLevel(ctx context.Context, id int64, from, to domain.Level, msg outbox.Message) error
}

type credentialRepository struct {
	dao dao.CredentialDAO
}

func NewCredentialRepository(d dao.CredentialDAO) CredentialRepository {
	return &credentialRepository{dao: d}
}

func (r *credentialRepository) Create(ctx context.Context, c domain.Credential, unique bool, build outbox.Builder) (int64, error) {
	id, err := r.dao.Create(ctx, r.toEntity(c), unique, build)
	if errors.Is(err, dao.ErrAlreadyMinted) {
		return 0, domain.ErrAlreadyMinted
	}
	return id, err
}

func (r *credentialRepository) FindByID(ctx context.Context, id int64) (domain.Credential, error) {
	c, err := r.dao.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Credential{}, domain.ErrCredentialNotFound
	}
	if err != nil {
		return domain.Credential{}, err
	}
	return r.toDomain(c), nil
}

func (r *credentialRepository) FindByOwner(ctx context.Context, owner string) ([]domain.Credential, error) {
	cs, err := r.dao.FindByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}
	return slice.Map(cs, func(idx int, src dao.Credential) domain.Credential {
		return r.toDomain(src)
	}), nil
}

func (r *credentialRepository) UpdateName(ctx context.Context, id int64, name string) error {
	return r.dao.UpdateName(ctx, id, name)
}

func (r *credentialRepository) UpdateDescription(ctx context.Context, id int64, description string) error {
	return r.dao.UpdateDescription(ctx, id, description)
}

func (r *credentialRepository) UpdateLevel(ctx context.Context, id int64, from, to domain.Level, msg outbox.Message) error {
	err := r.dao.UpdateLevel(ctx, id, from.ToUint8(), to.ToUint8(), msg)
	if errors.Is(err, dao.ErrLevelChanged) {
		return domain.ErrLevelChanged
	}
	return err
}

func (r *credentialRepository) toEntity(c domain.Credential) dao.Credential {
	return dao.Credential{
		Id:          c.ID,
		Owner:       c.Owner,
		Level:       c.Level.ToUint8(),
		Name:        c.Name,
		Description: c.Description,
		MetadataURI: c.MetadataURI,
	}
}

func (r *credentialRepository) toDomain(c dao.Credential) domain.Credential {
	return domain.Credential{
		ID:          c.Id,
		Owner:       c.Owner,
		Level:       domain.Level(c.Level),
		Name:        c.Name,
		Description: c.Description,
		MetadataURI: c.MetadataURI,
		Ctime:       c.Ctime,
		Utime:       c.Utime,
	}
}
