package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLoggerInit(t *testing.T) {
	Convey("Given the global logger", t, func() {
		Convey("When initialized with defaults", func() {
			So(Init(), ShouldBeNil)

			Convey("Then Get should return a logger", func() {
				So(Get(), ShouldNotBeNil)
				So(Sync(), ShouldBeNil)
			})
		})

		Convey("When initialized with an unknown format", func() {
			err := Init(WithFormat("xml"))

			Convey("Then it should fail", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "unknown log format")
			})
		})
	})
}

func TestLoggerJSONOutput(t *testing.T) {
	Convey("Given a JSON logger writing to a buffer", t, func() {
		var buf bytes.Buffer
		So(Init(WithFormat("json"), WithWriter(&buf)), ShouldBeNil)
		defer func() { _ = Init() }()

		Convey("When logging with a request id and an error", func() {
			ctx := WithRequestID(context.Background(), "req-1")
			Named("standings").Warn(ctx, "live feed degraded",
				String("feed", "espn"),
				Int("entries", 0),
				Error(errors.New("timeout")),
			)

			var rec map[string]any
			So(json.Unmarshal(buf.Bytes(), &rec), ShouldBeNil)

			Convey("Then the record should carry every field", func() {
				So(rec["msg"], ShouldEqual, "live feed degraded")
				So(rec["level"], ShouldEqual, "WARN")
				So(rec["component"], ShouldEqual, "standings")
				So(rec["feed"], ShouldEqual, "espn")
				So(rec["entries"], ShouldEqual, float64(0))
				So(rec["error"], ShouldEqual, "timeout")
				So(rec["request_id"], ShouldEqual, "req-1")
				So(rec["source"], ShouldContainSubstring, "logger_test.go")
			})
		})
	})
}

func TestLoggerLevels(t *testing.T) {
	Convey("Given a text logger at warn level", t, func() {
		var buf bytes.Buffer
		So(Init(WithWriter(&buf)), ShouldBeNil)
		defer func() { _ = Init() }()
		So(SetLevelString("warn"), ShouldBeNil)

		Convey("When logging below and at the level", func() {
			ctx := context.Background()
			Get().Info(ctx, "hidden")
			Get().Error(ctx, "shown")

			Convey("Then only the error should be written", func() {
				out := buf.String()
				So(out, ShouldNotContainSubstring, "hidden")
				So(out, ShouldContainSubstring, "shown")
				So(strings.Count(out, "\n"), ShouldEqual, 1)
			})
		})

		Convey("When the level string is invalid", func() {
			So(SetLevelString("loud"), ShouldNotBeNil)
		})
	})
}

func TestRequestID(t *testing.T) {
	Convey("Given contexts with and without a request id", t, func() {
		So(RequestID(context.Background()), ShouldEqual, "")
		So(RequestID(WithRequestID(context.Background(), "abc")), ShouldEqual, "abc")
	})
}

func TestNop(t *testing.T) {
	Convey("Given a nop logger", t, func() {
		l := Nop()

		Convey("Then logging should not panic", func() {
			So(func() {
				l.Error(context.Background(), "discarded", Bool("ok", false))
				l.Named("x").Debug(context.Background(), "discarded")
			}, ShouldNotPanic)
		})
	})
}
