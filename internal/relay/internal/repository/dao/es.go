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
	_ "embed"
	"time"

	"github.com/olivere/elastic/v7"
)

const RecordIndexName = "relay_transaction_records"

//go:embed record_index.json
var recordIndex string

type RecordDocument struct {
	Kind        string `json:"kind"`
	Actor       string `json:"actor"`
	Counterpart string `json:"counterpart,omitempty"`
	TokenID     *int64 `json:"token_id,omitempty"`
	BadgeType   *uint8 `json:"badge_type,omitempty"`
	Amount      *int64 `json:"amount,omitempty"`
	URI         string `json:"uri,omitempty"`
	RawEventRef string `json:"raw_event_ref"`
	Seq         int64  `json:"seq"`
	Detail      string `json:"detail"`
	ObservedAt  int64  `json:"observed_at"`
}

// RecordIndexer 把流水同步到搜索引擎，失败不影响落库
type RecordIndexer interface {
	Index(ctx context.Context, doc RecordDocument) error
}

type RecordElasticIndexer struct {
	client *elastic.Client
}

func NewRecordElasticIndexer(client *elastic.Client) *RecordElasticIndexer {
	return &RecordElasticIndexer{client: client}
}

// Index 以 raw_event_ref 作为文档 ID，重复写入会覆盖同一文档
func (r *RecordElasticIndexer) Index(ctx context.Context, doc RecordDocument) error {
	_, err := r.client.Index().
		Index(RecordIndexName).
		Id(doc.RawEventRef).
		BodyJson(doc).
		Do(ctx)
	return err
}

type NopRecordIndexer struct{}

func (NopRecordIndexer) Index(ctx context.Context, doc RecordDocument) error {
	return nil
}

// InitES 创建索引
func InitES(client *elastic.Client) error {
	const timeout = time.Second * 10
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return tryCreateIndex(ctx, client, RecordIndexName, recordIndex)
}

func tryCreateIndex(ctx context.Context,
	client *elastic.Client,
	idxName, idxCfg string,
) error {
	ok, err := client.IndexExists(idxName).Do(ctx)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}
	_, err = client.CreateIndex(idxName).Body(idxCfg).Do(ctx)
	return err
}
