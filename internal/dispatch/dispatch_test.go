package dispatch

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ascendara/crashreporter/common"
	"github.com/ascendara/crashreporter/internal/layout"
	"github.com/ascendara/crashreporter/pkg/crash"
	"github.com/ascendara/crashreporter/pkg/logger"
)

type fakeSubmitter struct {
	calls    int
	got      crash.Record
	deadline time.Duration
	err      error
}

func (f *fakeSubmitter) Submit(ctx context.Context, rec crash.Record) (string, error) {
	f.calls++
	f.got = rec
	if d, ok := ctx.Deadline(); ok {
		f.deadline = time.Until(d)
	}
	if f.err != nil {
		return "", f.err
	}
	return "receipt-42", nil
}

func testRecord() crash.Record {
	return crash.Build("maindownloader", 1001, "boom", time.Now())
}

func TestSubmitWithoutSubmitter(t *testing.T) {
	d := New(testRecord(), Options{})
	out := d.SubmitReport()
	if out.Quit {
		t.Error("submit must not quit")
	}
	if out.Notice == nil {
		t.Fatal("expected acknowledgment")
	}
	if out.Notice.Title != "Crash Report" {
		t.Errorf("title = %q", out.Notice.Title)
	}
	want := "Thank you for helping improve Ascendara!\nThe crash report has been uploaded successfully."
	if out.Notice.Message != want {
		t.Errorf("message = %q", out.Notice.Message)
	}
}

func TestSubmitSuccess(t *testing.T) {
	sub := &fakeSubmitter{}
	log := logger.NewMockLogger()
	rec := testRecord()
	d := New(rec, Options{Submitter: sub, Timeout: 2 * time.Second, Logger: log})

	out := d.SubmitReport()
	if sub.calls != 1 {
		t.Fatalf("expected 1 submission, got %d", sub.calls)
	}
	if !sub.got.Equal(rec) {
		t.Error("submitter received a different record")
	}
	if sub.deadline <= 0 || sub.deadline > 2*time.Second {
		t.Errorf("submission not bounded by timeout: %v", sub.deadline)
	}
	if out.Notice == nil || out.Notice.Message != reportThanks {
		t.Errorf("unexpected outcome %+v", out)
	}
	if len(log.InfoCalls) != 1 || !strings.Contains(log.InfoCalls[0], "receipt-42") {
		t.Errorf("info log = %v", log.InfoCalls)
	}
}

func TestSubmitFailure(t *testing.T) {
	sub := &fakeSubmitter{err: errors.New("connection refused")}
	log := logger.NewMockLogger()
	d := New(testRecord(), Options{Submitter: sub, Logger: log})

	out := d.SubmitReport()
	if out.Quit {
		t.Error("failed submit must leave the window open")
	}
	if out.Notice == nil || out.Notice.Message != reportFailed {
		t.Errorf("unexpected outcome %+v", out)
	}
	if len(log.ErrorCalls) != 1 || !strings.Contains(log.ErrorCalls[0], "connection refused") {
		t.Errorf("error log = %v", log.ErrorCalls)
	}
	if sub.deadline <= 0 || sub.deadline > DefaultTimeout {
		t.Errorf("default timeout not applied: %v", sub.deadline)
	}
}

func TestOpenSupport(t *testing.T) {
	var opened []string
	open := func(u string) error {
		opened = append(opened, u)
		return nil
	}

	t.Run("default url", func(t *testing.T) {
		opened = nil
		out := New(testRecord(), Options{Open: open}).OpenSupport()
		if out.Notice != nil || out.Quit {
			t.Errorf("support must not change the window: %+v", out)
		}
		if len(opened) != 1 || opened[0] != common.DefaultSupportURL {
			t.Errorf("opened %v", opened)
		}
	})

	t.Run("configured url", func(t *testing.T) {
		opened = nil
		New(testRecord(), Options{Open: open, SupportURL: "https://help.example.com"}).OpenSupport()
		if len(opened) != 1 || opened[0] != "https://help.example.com" {
			t.Errorf("opened %v", opened)
		}
	})
}

func TestOpenSupportFailure(t *testing.T) {
	log := logger.NewMockLogger()
	d := New(testRecord(), Options{
		Open:   func(string) error { return errors.New("no browser") },
		Logger: log,
	})
	out := d.OpenSupport()
	if out.Notice != nil || out.Quit {
		t.Errorf("failure must be silent to the user: %+v", out)
	}
	if len(log.ErrorCalls) != 1 || !strings.HasPrefix(log.ErrorCalls[0], "Failed to open support link") {
		t.Errorf("error log = %v", log.ErrorCalls)
	}
}

func TestOpenSupportWithoutOpener(t *testing.T) {
	log := logger.NewMockLogger()
	out := New(testRecord(), Options{Logger: log}).OpenSupport()
	if out.Notice != nil || out.Quit {
		t.Errorf("unexpected outcome %+v", out)
	}
	if len(log.ErrorCalls) != 1 {
		t.Errorf("error log = %v", log.ErrorCalls)
	}
}

func TestRestartHost(t *testing.T) {
	out := New(testRecord(), Options{}).RestartHost()
	if !out.Quit {
		t.Error("restart must quit after the acknowledgment")
	}
	if out.Notice == nil || out.Notice.Title != "Restart" ||
		out.Notice.Message != "Please restart Ascendara manually at this time." {
		t.Errorf("unexpected outcome %+v", out)
	}
}

func TestClose(t *testing.T) {
	out := New(testRecord(), Options{}).Close()
	if !out.Quit || out.Notice != nil {
		t.Errorf("unexpected outcome %+v", out)
	}
}

func TestDo(t *testing.T) {
	var opened int
	sub := &fakeSubmitter{}
	d := New(testRecord(), Options{
		Open:      func(string) error { opened++; return nil },
		Submitter: sub,
	})

	tests := []struct {
		action    layout.Action
		wantQuit  bool
		wantTitle string
	}{
		{layout.ActionSubmit, false, "Crash Report"},
		{layout.ActionSupport, false, ""},
		{layout.ActionRestart, true, "Restart"},
		{layout.ActionClose, true, ""},
		{layout.ActionNone, false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.action.String(), func(t *testing.T) {
			out := d.Do(tt.action)
			if out.Quit != tt.wantQuit {
				t.Errorf("Quit = %v, want %v", out.Quit, tt.wantQuit)
			}
			title := ""
			if out.Notice != nil {
				title = out.Notice.Title
			}
			if title != tt.wantTitle {
				t.Errorf("title = %q, want %q", title, tt.wantTitle)
			}
		})
	}
	if sub.calls != 1 || opened != 1 {
		t.Errorf("submit calls = %d, opens = %d", sub.calls, opened)
	}
}
