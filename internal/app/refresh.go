package app

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/i474232898/weathr/internal/weather"
)

const fetchTimeout = 30 * time.Second

// Update carries one refresh outcome from the background fetch job to
// the render loop. Exactly one of Snapshot/Err is meaningful.
type Update struct {
	Snapshot weather.Snapshot
	Err      error
}

// Mailbox is a one-slot channel between the fetch job and the render
// loop: posting replaces any unread value, taking never blocks.
type Mailbox struct {
	ch chan Update
}

func NewMailbox() *Mailbox {
	return &Mailbox{ch: make(chan Update, 1)}
}

// Post stores u, discarding an unread previous value if present.
func (m *Mailbox) Post(u Update) {
	for {
		select {
		case m.ch <- u:
			return
		default:
			select {
			case <-m.ch:
			default:
			}
		}
	}
}

// Take returns the pending update, if any, without blocking.
func (m *Mailbox) Take() (Update, bool) {
	select {
	case u := <-m.ch:
		return u, true
	default:
		return Update{}, false
	}
}

// Refresher fetches the current weather on a fixed schedule, off the
// render path, and posts each outcome into the mailbox. Combined with
// the client's TTL cache this keeps the provider at one call per
// refresh interval.
type Refresher struct {
	scheduler *gocron.Scheduler
	client    *weather.Client
	loc       weather.Location
	units     weather.Units
	interval  time.Duration
	mailbox   *Mailbox
}

func NewRefresher(client *weather.Client, loc weather.Location, units weather.Units, interval time.Duration, mailbox *Mailbox) *Refresher {
	return &Refresher{
		scheduler: gocron.NewScheduler(time.UTC),
		client:    client,
		loc:       loc,
		units:     units,
		interval:  interval,
		mailbox:   mailbox,
	}
}

// Start schedules the fetch job, running it once immediately so the
// first snapshot arrives without waiting a full interval.
func (r *Refresher) Start() error {
	_, err := r.scheduler.Every(r.interval).StartImmediately().Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		snap, err := r.client.Current(ctx, r.loc, r.units)
		if err != nil {
			r.mailbox.Post(Update{Err: err})
			return
		}
		r.mailbox.Post(Update{Snapshot: snap})
	})
	if err != nil {
		return err
	}

	r.scheduler.StartAsync()
	return nil
}

// Stop cancels the schedule. Any in-flight fetch finishes on its own.
func (r *Refresher) Stop() {
	r.scheduler.Stop()
}
