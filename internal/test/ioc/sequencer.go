package testioc

import (
	"sync"

	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/pkg/snowflake"
)

var (
	seq         snowflake.Sequencer
	seqInitOnce sync.Once
)

func InitSequencer() snowflake.Sequencer {
	seqInitOnce.Do(func() {
		g, err := snowflake.NewGenerator(1, 2)
		if err != nil {
			panic(err)
		}
		seq = g
	})
	return seq
}
