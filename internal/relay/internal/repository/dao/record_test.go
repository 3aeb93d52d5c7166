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
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

func openDB(t *testing.T, mockDB *sql.DB) *gorm.DB {
	db, err := gorm.Open(gormMysql.New(gormMysql.Config{
		Conn:                      mockDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db
}

func TestRecordDAO_Insert(t *testing.T) {
	testCases := []struct {
		name         string
		mock         func(t *testing.T) *sql.DB
		wantInserted bool
		wantErr      error
	}{
		{
			name: "首次写入",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectExec("INSERT INTO `relay_transaction_records` .* ON DUPLICATE KEY UPDATE .*").
					WillReturnResult(sqlmock.NewResult(1, 1))
				return mockDB
			},
			wantInserted: true,
		},
		{
			name: "重复事件",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectExec("INSERT INTO `relay_transaction_records` .* ON DUPLICATE KEY UPDATE .*").
					WillReturnResult(sqlmock.NewResult(0, 0))
				return mockDB
			},
		},
		{
			name: "数据库错误",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectExec("INSERT INTO `relay_transaction_records` .*").
					WillReturnError(sql.ErrConnDone)
				return mockDB
			},
			wantErr: sql.ErrConnDone,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := NewRecordGORMDAO(openDB(t, tc.mock(t)))
			inserted, err := d.Insert(context.Background(), TransactionRecord{
				Kind:        1,
				Actor:       "0x1111111111111111111111111111111111111111",
				RawEventRef: "0xabc:0",
				Seq:         1,
				Detail:      "{}",
				ObservedAt:  1000,
			})
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantInserted, inserted)
		})
	}
}

func TestRecordDAO_AdvanceCursor(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectExec("INSERT INTO `relay_cursors` .* ON DUPLICATE KEY UPDATE .*GREATEST.*").
		WillReturnResult(sqlmock.NewResult(0, 1))
	d := NewRecordGORMDAO(openDB(t, mockDB))
	err = d.AdvanceCursor(context.Background(), Cursor{Kind: 4, Seq: 9, RawEventRef: "0xabc:0"})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordDAO_DeadLetters(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectExec("INSERT INTO `relay_dead_letters` .*").
		WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectQuery("SELECT \\* FROM `relay_dead_letters` WHERE attempts < .* ORDER BY id ASC LIMIT .*").
		WillReturnRows(sqlmock.NewRows([]string{"id", "kind", "raw_event_ref", "body", "reason", "attempts", "ctime", "utime"}).
			AddRow(3, 4, "0xabc:0", []byte("{}"), "mock", 0, 1, 1))
	mock.ExpectExec("UPDATE `relay_dead_letters` SET .*attempts.*").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM `relay_dead_letters` .*").
		WillReturnResult(sqlmock.NewResult(0, 1))

	d := NewRecordGORMDAO(openDB(t, mockDB))
	ctx := context.Background()
	id, err := d.InsertDeadLetter(ctx, DeadLetter{Kind: 4, RawEventRef: "0xabc:0", Body: []byte("{}"), Reason: "mock"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)
	dls, err := d.FindDeadLetters(ctx, 5, 10)
	require.NoError(t, err)
	require.Len(t, dls, 1)
	assert.Equal(t, "0xabc:0", dls[0].RawEventRef)
	require.NoError(t, d.IncrDeadLetterAttempts(ctx, id, "again"))
	require.NoError(t, d.DeleteDeadLetter(ctx, id))
	require.NoError(t, mock.ExpectationsWereMet())
}

// 大批量转账的负载和原始消息体都会超过 64KB
func TestLargePayloadColumns(t *testing.T) {
	testCases := []struct {
		name     string
		model    any
		field    string
		wantType string
	}{
		{
			name:     "流水负载",
			model:    &TransactionRecord{},
			field:    "Detail",
			wantType: "mediumtext",
		},
		{
			name:     "死信消息体",
			model:    &DeadLetter{},
			field:    "Body",
			wantType: "mediumblob",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := schema.Parse(tc.model, &sync.Map{}, schema.NamingStrategy{})
			require.NoError(t, err)
			f := s.LookUpField(tc.field)
			require.NotNil(t, f)
			assert.Equal(t, tc.wantType, f.TagSettings["TYPE"])
		})
	}
}
