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

//go:build e2e

package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/badge"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/pkg/chainevent"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/pkg/mqx"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/pkg/outbox"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/relay"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/relay/internal/repository/dao"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/relay/internal/web"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/test"
	testioc "github.com/codestates-beb/beb-09-clean-mile-sub001/internal/test/ioc"
	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	alice  = "0x1111111111111111111111111111111111111111"
	bob    = "0x2222222222222222222222222222222222222222"
	issuer = "0x9999999999999999999999999999999999999999"
)

type RelayModuleTestSuite struct {
	suite.Suite
	db         *egorm.Component
	q          mq.MQ
	outbox     *outbox.GORMDAO
	dispatcher *outbox.Dispatcher
	badge      *badge.Module
	relay      *relay.Module
	server     *egin.Component
}

func TestRelayModule(t *testing.T) {
	suite.Run(t, new(RelayModuleTestSuite))
}

func (s *RelayModuleTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	s.q = testioc.InitMQ()
	ec := testioc.InitCache()
	var err error
	s.badge, err = badge.InitModule(s.db, ec, testioc.InitSequencer())
	s.Require().NoError(err)
	s.outbox = outbox.NewGORMDAO(s.db)
	s.dispatcher = outbox.NewDispatcher(s.outbox, s.q, outbox.DefaultDispatcherConfig())
	s.relay, err = relay.InitModule(s.db, s.q, ec, testioc.InitES(), s.outbox)
	s.Require().NoError(err)
	s.relay.Daemon.Start(context.Background())
	// 等订阅建立之后再发事件
	time.Sleep(200 * time.Millisecond)

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	s.server = egin.Load("server").Build()
	s.relay.Hdl.PublicRoutes(s.server.Engine)
}

func (s *RelayModuleTestSuite) TearDownSuite() {
	s.NoError(s.relay.Daemon.Stop())
}

func (s *RelayModuleTestSuite) TearDownTest() {
	for _, table := range []string{
		"relay_transaction_records",
		"relay_dead_letters",
		"relay_cursors",
		"badge_tokens",
		"badge_balances",
		"badge_scores",
		"ledger_outbox",
	} {
		s.NoError(s.db.Exec("TRUNCATE TABLE `" + table + "`").Error)
	}
	s.NoError(s.db.Exec("UPDATE `badge_sequences` SET `next` = 0").Error)
}

func (s *RelayModuleTestSuite) post(path string, req any) *http.Request {
	r, err := http.NewRequest(http.MethodPost, path, iox.NewJSONReader(req))
	s.Require().NoError(err)
	r.Header.Set("content-type", "application/json")
	return r
}

func (s *RelayModuleTestSuite) recordsOf(actor string) []web.Record {
	recorder := test.NewJSONResponseRecorder[web.RecordList]()
	s.server.ServeHTTP(recorder, s.post("/relay/records/actor", web.ActorReq{Actor: actor}))
	s.Require().Equal(200, recorder.Code)
	res := recorder.MustScan()
	s.Require().Zero(res.Code)
	return res.Data.Records
}

func (s *RelayModuleTestSuite) countByRef(ref string) int64 {
	var cnt int64
	err := s.db.Model(&dao.TransactionRecord{}).Where("raw_event_ref = ?", ref).Count(&cnt).Error
	s.Require().NoError(err)
	return cnt
}

// uniqueEnvelope 每次运行生成不同的 txHash，避开去重缓存里的旧数据
func (s *RelayModuleTestSuite) uniqueEnvelope(p chainevent.Payload, seq int64) chainevent.Envelope {
	env, err := chainevent.Seal(p, fmt.Sprintf("0x%x", time.Now().UnixNano()), 0, seq, time.Now().UnixMilli())
	s.Require().NoError(err)
	return env
}

func (s *RelayModuleTestSuite) TestMirrorBadgeEvents() {
	t := s.T()
	ctx := context.Background()
	id, err := s.badge.Svc.Issue(ctx, issuer, badge.BadgeTypeGold, 100, "ipfs://gold")
	require.NoError(t, err)
	require.NoError(t, s.badge.Svc.Transfer(ctx, issuer, issuer, alice, id, 10))
	require.NoError(t, s.badge.Svc.TransferMany(ctx, issuer, issuer, []string{alice, bob}, id, 5))
	n, err := s.dispatcher.Dispatch(ctx, 10)
	require.NoError(t, err)
	require.Equal(t, 3, n)

	var records []web.Record
	require.Eventually(t, func() bool {
		records = s.recordsOf(issuer)
		return len(records) == 3
	}, 5*time.Second, 50*time.Millisecond)

	byKind := make(map[string]web.Record, len(records))
	for _, r := range records {
		byKind[r.Kind] = r
	}
	issuance := byKind["issuance"]
	require.NotNil(t, issuance.Amount)
	assert.Equal(t, int64(100), *issuance.Amount)
	assert.Equal(t, uint8(2), *issuance.BadgeType)
	assert.Equal(t, "ipfs://gold", *issuance.URI)
	assert.Nil(t, issuance.Counterpart)

	single := byKind["transfer_single"]
	require.NotNil(t, single.Counterpart)
	assert.Equal(t, alice, *single.Counterpart)
	assert.Equal(t, int64(10), *single.Amount)
	assert.Nil(t, single.BadgeType)

	batch := byKind["transfer_batch"]
	assert.Equal(t, int64(5), *batch.Amount)
	var detail chainevent.TransferBatch
	require.NoError(t, json.Unmarshal(batch.Detail, &detail))
	assert.Equal(t, []string{alice, bob}, detail.Recipients)

	cursor := test.NewJSONResponseRecorder[web.Cursor]()
	s.server.ServeHTTP(cursor, s.post("/relay/cursor", web.KindReq{Kind: "transfer_single"}))
	require.Equal(t, 200, cursor.Code)
	c := cursor.MustScan().Data
	assert.Equal(t, single.Seq, c.Seq)
	assert.Equal(t, single.RawEventRef, c.RawEventRef)
}

func (s *RelayModuleTestSuite) TestReplaySameEvent() {
	t := s.T()
	ctx := context.Background()
	env := s.uniqueEnvelope(chainevent.ApprovalForAll{Owner: alice, Operator: bob, Approved: true}, 1)
	producer, err := mqx.NewJSONProducer[chainevent.Envelope](s.q, chainevent.KindApprovalForAll.Topic())
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		require.NoError(t, producer.Produce(ctx, env.RawEventRef(), env))
	}
	// 再发一条标记事件，它落库说明前面的都处理过了
	marker := s.uniqueEnvelope(chainevent.ApprovalForAll{Owner: bob, Operator: alice, Approved: true}, 2)
	require.NoError(t, producer.Produce(ctx, marker.RawEventRef(), marker))
	require.Eventually(t, func() bool {
		return s.countByRef(marker.RawEventRef()) == 1
	}, 5*time.Second, 50*time.Millisecond)

	assert.Equal(t, int64(1), s.countByRef(env.RawEventRef()))
	records := s.recordsOf(alice)
	require.Len(t, records, 1)
	assert.Equal(t, "approval_for_all", records[0].Kind)
	assert.Equal(t, bob, *records[0].Counterpart)
	assert.Nil(t, records[0].TokenID)
}

func (s *RelayModuleTestSuite) TestReplayDeadLetters() {
	t := s.T()
	ctx := context.Background()
	env := s.uniqueEnvelope(chainevent.CredentialMint{
		To:          alice,
		Name:        "clean miler",
		TokenID:     1,
		MetadataURI: "ipfs://dnft/1",
	}, 1)
	body, err := json.Marshal(env)
	require.NoError(t, err)
	require.NoError(t, s.relay.Svc.Park(ctx, relay.DeadLetter{
		Kind:        chainevent.KindCredentialMint,
		RawEventRef: env.RawEventRef(),
		Body:        body,
		Reason:      "mock db error",
	}))
	require.NoError(t, s.relay.Svc.Park(ctx, relay.DeadLetter{
		Kind:   chainevent.KindCredentialMint,
		Body:   []byte("not json"),
		Reason: "malformed",
	}))

	require.NoError(t, s.relay.ReplayJob.Run(ctx))

	recorder := test.NewJSONResponseRecorder[web.Record]()
	s.server.ServeHTTP(recorder, s.post("/relay/records/detail", web.RefReq{RawEventRef: env.RawEventRef()}))
	require.Equal(t, 200, recorder.Code)
	r := recorder.MustScan().Data
	assert.Equal(t, "credential_mint", r.Kind)
	assert.Equal(t, alice, r.Actor)
	assert.Equal(t, int64(1), *r.TokenID)

	var left []dao.DeadLetter
	require.NoError(t, s.db.Find(&left).Error)
	require.Len(t, left, 1)
	assert.Equal(t, 1, left[0].Attempts)
}

// TestCatchUpOnRestart 停机期间提交、还没投递的事件在重启后从发件箱补齐
func (s *RelayModuleTestSuite) TestCatchUpOnRestart() {
	t := s.T()
	ctx := context.Background()
	require.NoError(t, s.relay.Daemon.Stop())

	id, err := s.badge.Svc.Issue(ctx, issuer, badge.BadgeTypeSilver, 50, "ipfs://silver")
	require.NoError(t, err)
	require.NoError(t, s.badge.Svc.Transfer(ctx, issuer, issuer, bob, id, 7))

	s.relay.Daemon.Start(context.Background())
	require.Eventually(t, func() bool {
		return len(s.recordsOf(issuer)) == 2
	}, 5*time.Second, 50*time.Millisecond)
}
