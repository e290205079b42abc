package commands

import (
	"errors"
	"testing"
)

func TestParseSupportedCommands(t *testing.T) {
	cases := []struct {
		in       string
		typeWant Type
	}{
		{"/log send_dm with Avery Chen", TypeLog},
		{"goal up", TypeGoal},
		{"workout reconnect", TypeWorkout},
		{"/reset confirm", TypeReset},
	}

	for _, tc := range cases {
		cmd, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tc.in, err)
		}
		if cmd.Type != tc.typeWant {
			t.Fatalf("parse %q type = %s, want %s", tc.in, cmd.Type, tc.typeWant)
		}
	}
}

func TestParseLogArguments(t *testing.T) {
	cmd, err := Parse("/log coffee_chat with Avery Chen")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Log.ActivityID != "coffee_chat" || cmd.Log.ContactName != "Avery Chen" {
		t.Fatalf("unexpected log args: %+v", cmd.Log)
	}

	cmd, err = Parse("log like_post")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Log.ActivityID != "like_post" || cmd.Log.ContactName != "" {
		t.Fatalf("unexpected log args: %+v", cmd.Log)
	}
}

func TestParseGoalSteps(t *testing.T) {
	cases := []struct {
		in    string
		delta int
	}{
		{"goal up", 5},
		{"goal down", -5},
		{"goal -10", -10},
	}
	for _, tc := range cases {
		cmd, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tc.in, err)
		}
		if cmd.Goal.Delta != tc.delta {
			t.Fatalf("parse %q delta = %d, want %d", tc.in, cmd.Goal.Delta, tc.delta)
		}
	}

	if _, err := Parse("goal sideways"); err == nil {
		t.Fatal("expected error for bad goal step")
	}
}

func TestParseResetRequiresConfirm(t *testing.T) {
	cmd, err := Parse("reset")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Reset.Confirmed {
		t.Fatal("bare reset must not be confirmed")
	}
	cmd, err = Parse("reset confirm")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if !cmd.Reset.Confirmed {
		t.Fatal("reset confirm should be confirmed")
	}
}

func TestParseUnknownCommand(t *testing.T) {
	_, err := Parse("/unknown do x")
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeUnknownCommand {
		t.Fatalf("expected unknown command error, got %v", err)
	}
}

func TestExecuteDispatch(t *testing.T) {
	cmd, err := Parse("/log send_dm with Avery")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	called := false
	res, err := Execute(cmd, Handlers{
		Log: func(a LogArgs) (Result, error) {
			called = true
			if a.ActivityID != "send_dm" || a.ContactName != "Avery" {
				t.Fatalf("unexpected args: %+v", a)
			}
			return Result{Message: "logged"}, nil
		},
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !called || res.Message != "logged" {
		t.Fatalf("dispatch failed, called=%v res=%+v", called, res)
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	cmd, err := Parse("goal up")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	_, err = Execute(cmd, Handlers{})
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeHandlerMissing {
		t.Fatalf("expected missing handler error, got %v", err)
	}
}
