package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"siparhanud-backend/internal/logger"
	"siparhanud-backend/internal/model"
	"siparhanud-backend/internal/repository"
	"siparhanud-backend/internal/testutil"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flakyStore struct {
	mu       sync.Mutex
	failures int
	saved    []model.AuditLog
}

func (s *flakyStore) Create(_ context.Context, entry *model.AuditLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failures > 0 {
		s.failures--
		return errors.New("database is locked")
	}
	s.saved = append(s.saved, *entry)
	return nil
}

type recordingSink struct {
	entries []model.AuditLog
	err     error
}

func (s *recordingSink) Publish(_ context.Context, entry model.AuditLog) error {
	s.entries = append(s.entries, entry)
	return s.err
}

func TestRecordPersistsSnapshots(t *testing.T) {
	db := testutil.OpenDB(t)
	repo := repository.NewAuditRepository(db)
	at := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	l := NewLogger(repo, logger.Nop()).WithClock(func() time.Time { return at })

	actor := Actor{ID: "u1", Username: "admin", IP: "10.0.0.1"}
	before := map[string]string{"pangkat": "KAPTEN"}
	after := map[string]string{"pangkat": "MAYOR"}
	l.Record(context.Background(), actor, ActionUpdatePersonel, EntityPersonel, "12345", before, after)

	list, total, err := repo.List(context.Background(), repository.AuditFilter{EntityType: EntityPersonel})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)

	entry := list[0]
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "admin", entry.Username)
	assert.Equal(t, "10.0.0.1", entry.IPAddress)
	assert.Equal(t, ActionUpdatePersonel, entry.Action)
	assert.True(t, at.Equal(entry.Timestamp))

	var got map[string]string
	require.NoError(t, json.Unmarshal(entry.NewValue, &got))
	assert.Equal(t, "MAYOR", got["pangkat"])
}

func TestRecordNilSnapshots(t *testing.T) {
	store := &flakyStore{}
	l := NewLogger(store, logger.Nop())

	l.Record(context.Background(), Actor{ID: "u1"}, ActionLogin, EntityUser, "u1", nil, nil)

	require.Len(t, store.saved, 1)
	assert.Nil(t, store.saved[0].OldValue)
	assert.Nil(t, store.saved[0].NewValue)
}

func TestRecordSwallowsFailureAndRetries(t *testing.T) {
	store := &flakyStore{failures: 2}
	sink := &recordingSink{}
	l := NewLogger(store, logger.Nop()).WithSink(sink)
	ctx := context.Background()

	assert.NotPanics(t, func() {
		l.Record(ctx, Actor{ID: "u1"}, ActionCreatePersonel, EntityPersonel, "1", nil, map[string]string{"nrp": "1"})
		l.Record(ctx, Actor{ID: "u1"}, ActionCreatePersonel, EntityPersonel, "2", nil, map[string]string{"nrp": "2"})
	})
	assert.Equal(t, 2, l.Pending())
	assert.Empty(t, sink.entries, "entri gagal tidak dipublish")

	assert.Equal(t, 2, l.Flush(ctx))
	assert.Zero(t, l.Pending())
	require.Len(t, store.saved, 2)
	assert.Equal(t, "1", store.saved[0].EntityID, "urutan antrian dipertahankan")
	assert.Len(t, sink.entries, 2)
}

func TestFlushKeepsFailedEntries(t *testing.T) {
	store := &flakyStore{failures: 3}
	l := NewLogger(store, logger.Nop())
	ctx := context.Background()

	l.Record(ctx, Actor{}, ActionLogin, EntityUser, "a", nil, nil)
	l.Record(ctx, Actor{}, ActionLogin, EntityUser, "b", nil, nil)
	// gagal ketiga terjadi saat flush entri pertama
	assert.Equal(t, 1, l.Flush(ctx))
	assert.Equal(t, 1, l.Pending())

	assert.Equal(t, 1, l.Flush(ctx))
	assert.Zero(t, l.Pending())
}

func TestFlushAndStopLogging(t *testing.T) {
	var out bytes.Buffer
	store := &flakyStore{failures: 3}
	l := NewLogger(store, logger.New("debug").WithOutput(&out))
	ctx := context.Background()

	l.Record(ctx, Actor{}, ActionLogin, EntityUser, "a", nil, nil)
	l.Record(ctx, Actor{}, ActionLogin, EntityUser, "b", nil, nil)

	// gagal ketiga: satu entri tetap tertunda setelah flush terakhir
	l.Stop()
	assert.Equal(t, 1, l.Pending())
	assert.Contains(t, out.String(), "flush audit: 1 ditulis, 1 gagal")
	assert.Contains(t, out.String(), "retry audit dihentikan")
}

func TestSinkFailureDoesNotAffectRecord(t *testing.T) {
	store := &flakyStore{}
	sink := &recordingSink{err: errors.New("channel closed")}
	l := NewLogger(store, logger.Nop()).WithSink(sink)

	l.Record(context.Background(), Actor{}, ActionLogout, EntityUser, "u1", nil, nil)

	assert.Len(t, store.saved, 1)
	assert.Zero(t, l.Pending())
}

func TestStartRejectsBadSpec(t *testing.T) {
	l := NewLogger(&flakyStore{}, logger.Nop())
	assert.Error(t, l.Start("bukan cron"))

	l = NewLogger(&flakyStore{}, logger.Nop())
	require.NoError(t, l.Start("@every 1h"))
	l.Stop()
}

func TestCreateRiwayatAction(t *testing.T) {
	assert.Equal(t, "CREATE_RIWAYAT_PANGKAT", CreateRiwayatAction("riwayat_pangkat"))
}

type fakeChannel struct {
	exchange, key string
	msg           amqp.Publishing
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	f.exchange, f.key, f.msg = exchange, key, msg
	return nil
}

func TestAMQPSinkPublish(t *testing.T) {
	ch := &fakeChannel{}
	sink := NewAMQPSink(ch, "siparhanud.audit", "audit.log")
	entry := model.AuditLog{ID: "e1", Action: ActionPengajuanApproved, EntityType: EntityPengajuan, Timestamp: time.Now()}

	require.NoError(t, sink.Publish(context.Background(), entry))
	assert.Equal(t, "siparhanud.audit", ch.exchange)
	assert.Equal(t, "audit.log", ch.key)
	assert.Equal(t, "application/json", ch.msg.ContentType)
	assert.Equal(t, amqp.Persistent, ch.msg.DeliveryMode)
	assert.Equal(t, ActionPengajuanApproved, ch.msg.Type)

	var decoded model.AuditLog
	require.NoError(t, json.Unmarshal(ch.msg.Body, &decoded))
	assert.Equal(t, "e1", decoded.ID)
	assert.NoError(t, sink.Close())
}
