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

package dao

import (
	"time"

	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/pkg/outbox"
	"github.com/ego-component/egorm"
	"gorm.io/gorm/clause"
)

func InitTables(db *egorm.Component) error {
	err := db.AutoMigrate(
		&BadgeToken{},
		&BadgeBalance{},
		&BadgeTokenApproval{},
		&BadgeOperatorApproval{},
		&BadgeScore{},
		&BadgeSequence{},
	)
	if err != nil {
		return err
	}
	if err = outbox.InitTables(db); err != nil {
		return err
	}
	return seedSequence(db)
}

// seedSequence 写入 tokenId 序列的初始行，已经存在时不动
func seedSequence(db *egorm.Component) error {
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&BadgeSequence{
		Name:  tokenSequence,
		Next:  0,
		Utime: time.Now().UnixMilli(),
	}).Error
}
