package audit

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"siparhanud-backend/internal/logger"
	"siparhanud-backend/internal/model"

	"github.com/google/uuid"
	"github.com/robfig/cron"
	"gorm.io/datatypes"
)

const maxPending = 10000

// Actor adalah identitas pelaku aksi yang dicatat.
type Actor struct {
	ID       string
	Username string
	IP       string
}

func ActorFrom(u *model.User, ip string) Actor {
	if u == nil {
		return Actor{IP: ip}
	}
	return Actor{ID: u.ID, Username: u.Username, IP: ip}
}

// Recorder dipakai handler dan usecase. Record tidak pernah mengembalikan error.
type Recorder interface {
	Record(ctx context.Context, actor Actor, action, entityType, entityID string, before, after interface{})
}

type Store interface {
	Create(ctx context.Context, entry *model.AuditLog) error
}

// Sink menerima salinan setiap entri yang sudah tersimpan, misalnya ke message broker.
type Sink interface {
	Publish(ctx context.Context, entry model.AuditLog) error
}

type Logger struct {
	store Store
	sink  Sink
	log   *logger.Logger
	now   func() time.Time

	mu      sync.Mutex
	pending []model.AuditLog

	cron *cron.Cron
}

func NewLogger(store Store, log *logger.Logger) *Logger {
	return &Logger{
		store: store,
		log:   log.With("component", "audit"),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (l *Logger) WithSink(sink Sink) *Logger {
	l.sink = sink
	return l
}

func (l *Logger) WithClock(now func() time.Time) *Logger {
	l.now = now
	return l
}

func (l *Logger) Record(ctx context.Context, actor Actor, action, entityType, entityID string, before, after interface{}) {
	entry := model.AuditLog{
		ID:         uuid.NewString(),
		UserID:     actor.ID,
		Username:   actor.Username,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		OldValue:   l.snapshot(before),
		NewValue:   l.snapshot(after),
		IPAddress:  actor.IP,
		Timestamp:  l.now(),
	}

	// audit tetap ditulis walau klien sudah memutus request
	ctx = context.WithoutCancel(ctx)
	if err := l.store.Create(ctx, &entry); err != nil {
		l.log.Errorf(err, "gagal menyimpan audit %s %s/%s, masuk antrian ulang", action, entityType, entityID)
		l.enqueue(entry)
		return
	}
	l.publish(ctx, entry)
}

func (l *Logger) snapshot(v interface{}) datatypes.JSON {
	if v == nil {
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		l.log.Error(err, "gagal serialisasi snapshot audit")
		return nil
	}
	return datatypes.JSON(raw)
}

func (l *Logger) publish(ctx context.Context, entry model.AuditLog) {
	if l.sink == nil {
		return
	}
	if err := l.sink.Publish(ctx, entry); err != nil {
		l.log.Errorf(err, "gagal publish audit %s", entry.ID)
	}
}

func (l *Logger) enqueue(entry model.AuditLog) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.pending) >= maxPending {
		dropped := l.pending[0]
		l.pending = l.pending[1:]
		l.log.Warnf("antrian audit penuh, entri %s %s dibuang", dropped.ID, dropped.Action)
	}
	l.pending = append(l.pending, entry)
}

// Pending mengembalikan jumlah entri yang menunggu ditulis ulang.
func (l *Logger) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.pending)
}

// Flush mencoba menulis ulang antrian. Entri yang masih gagal dikembalikan ke antrian.
func (l *Logger) Flush(ctx context.Context) int {
	l.mu.Lock()
	batch := l.pending
	l.pending = nil
	l.mu.Unlock()

	if len(batch) == 0 {
		return 0
	}

	var failed []model.AuditLog
	for i := range batch {
		if err := l.store.Create(ctx, &batch[i]); err != nil {
			failed = append(failed, batch[i])
			continue
		}
		l.publish(ctx, batch[i])
	}

	if len(failed) > 0 {
		l.log.Warnf("%d entri audit masih gagal ditulis", len(failed))
		l.mu.Lock()
		l.pending = append(failed, l.pending...)
		l.mu.Unlock()
	}
	l.log.Debugf("flush audit: %d ditulis, %d gagal", len(batch)-len(failed), len(failed))
	return len(batch) - len(failed)
}

// Start menjadwalkan Flush dengan ekspresi cron, misalnya "@every 30s".
func (l *Logger) Start(spec string) error {
	l.cron = cron.New()
	if err := l.cron.AddFunc(spec, func() { l.Flush(context.Background()) }); err != nil {
		return err
	}
	l.cron.Start()
	return nil
}

// Stop menghentikan jadwal lalu mencoba flush terakhir.
func (l *Logger) Stop() {
	if l.cron != nil {
		l.cron.Stop()
	}
	l.Flush(context.Background())
	if l.Pending() > 0 {
		l.log.Warn("retry audit dihentikan, masih ada entri yang belum tersimpan")
	}
}
