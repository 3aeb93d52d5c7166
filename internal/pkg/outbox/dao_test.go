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

package outbox

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
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

func messageRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "topic", "msg_key", "seq", "body", "status", "attempts", "ctime", "utime"}).
		AddRow(3, "ledger_issuance_events", "0xabc:0", 7, []byte(`{"seq":7}`), StatusSent, 0, 1, 1).
		AddRow(5, "ledger_issuance_events", "0xdef:0", 9, []byte(`{"seq":9}`), StatusPending, 1, 1, 1)
}

func TestAppend(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		msgs    []Message
		wantErr error
	}{
		{
			name: "批量写入",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO `ledger_outbox`").
					WillReturnResult(sqlmock.NewResult(1, 2))
			},
			msgs: []Message{
				{Topic: "ledger_issuance_events", Key: "0xabc:0", Seq: 1, Body: []byte("{}")},
				{Topic: "ledger_transfer_single_events", Key: "0xabd:0", Seq: 2, Body: []byte("{}")},
			},
		},
		{
			name: "没有消息不写库",
			mock: func(mock sqlmock.Sqlmock) {},
		},
		{
			name: "写入失败",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO `ledger_outbox`").
					WillReturnError(errors.New("mock db error"))
			},
			msgs:    []Message{{Topic: "ledger_issuance_events", Key: "0xabc:0", Seq: 1, Body: []byte("{}")}},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockDB, mock, err := sqlmock.New()
			require.NoError(t, err)
			tc.mock(mock)
			err = Append(openDB(t, mockDB), tc.msgs...)
			assert.Equal(t, tc.wantErr, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGORMDAO_FindAfter(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectQuery("SELECT \\* FROM `ledger_outbox` WHERE topic = \\? AND seq > \\? ORDER BY seq ASC LIMIT \\?").
		WillReturnRows(messageRows())

	d := NewGORMDAO(openDB(t, mockDB))
	msgs, err := d.FindAfter(context.Background(), "ledger_issuance_events", 6, 10)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	// 已经投递过的也要返回
	assert.Equal(t, StatusSent, msgs[0].Status)
	assert.Equal(t, int64(7), msgs[0].Seq)
	assert.Equal(t, "0xdef:0", msgs[1].Key)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGORMDAO_FindPending(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectQuery("SELECT \\* FROM `ledger_outbox` WHERE status = \\? ORDER BY id ASC LIMIT \\?").
		WillReturnRows(messageRows())

	d := NewGORMDAO(openDB(t, mockDB))
	msgs, err := d.FindPending(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, msgs, 2)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGORMDAO_Mark(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectExec("UPDATE `ledger_outbox` SET `status`=\\?,`utime`=\\? WHERE id = \\?").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE `ledger_outbox` SET `attempts`=attempts \\+ 1,`utime`=\\? WHERE id = \\?").
		WillReturnResult(sqlmock.NewResult(0, 1))

	d := NewGORMDAO(openDB(t, mockDB))
	require.NoError(t, d.MarkSent(context.Background(), 3))
	require.NoError(t, d.MarkFailed(context.Background(), 5))
	require.NoError(t, mock.ExpectationsWereMet())
}
