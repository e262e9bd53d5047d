package mappers

import (
	"testing"

	"log-query/internal/models"
	"log-query/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordMapper_Map(t *testing.T) {
	t.Parallel()

	mapper := NewRecordMapper()

	tests := []struct {
		name      string
		line      string
		wantKey   models.OptionalKey
		wantStats models.Statistics
		wantCode  string
	}{
		{
			name:      "full record",
			line:      "10.20.30.41,u300,600,query1",
			wantKey:   models.SomeKey(models.GroupKey{ClientAddress: "10.20.30.41", ActorID: "u300", QueryID: "query1"}),
			wantStats: models.NewStatistics(1, 600),
		},
		{
			name:      "undefined bytes",
			line:      "10.20.30.40,u200,-,query1",
			wantKey:   models.SomeKey(models.GroupKey{ClientAddress: "10.20.30.40", ActorID: "u200", QueryID: "query1"}),
			wantStats: models.NewStatistics(1, 0),
		},
		{
			name:      "undefined actor maps to the undefined key",
			line:      "10.20.30.47,-,600,query1",
			wantKey:   models.UndefinedKey(),
			wantStats: models.NewStatistics(1, 600),
		},
		{
			name:     "malformed line",
			line:     "10.20.30.47,-,600",
			wantCode: CodeMalformedLine,
		},
		{
			name:     "invalid byte count",
			line:     "10.20.30.40,u200,lots,query1",
			wantCode: CodeInvalidByteCount,
		},
		{
			name:     "invalid byte count fails even without an actor",
			line:     "10.20.30.40,-,lots,query1",
			wantCode: CodeInvalidByteCount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			key, stats, err := mapper.Map(tt.line)
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.True(t, svcerrors.HasCode(err, tt.wantCode), "got %v", err)
				assert.False(t, key.IsDefined())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKey, key)
			assert.True(t, tt.wantStats.Equal(stats), "want=%s got=%s", tt.wantStats, stats)
		})
	}
}
