package tracking

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func waitFrames(t *testing.T, l *Latest, n uint64) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for l.Frames() < n {
		if time.Now().After(deadline) {
			t.Fatalf("received %d frames, want %d", l.Frames(), n)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestHandlerIngestsFrames(t *testing.T) {
	latest := &Latest{}
	server := httptest.NewServer(NewHandler(latest))
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	client, err := Dial(url)
	if nil != err {
		t.Fatal(err)
	}
	defer client.Close()

	// Text and malformed messages are dropped without closing the stream
	client.conn.WriteMessage(websocket.TextMessage, []byte("hello"))
	client.conn.WriteMessage(websocket.BinaryMessage, []byte{0xc1})

	for _, f := range take.Frames {
		if err := client.Send(f); nil != err {
			t.Fatal(err)
		}
	}
	waitFrames(t, latest, 3)

	if got := latest.Hands(0); got != take.Frames[2].Hands {
		t.Errorf("latest hands = %+v", got)
	}
}

func TestClientClose(t *testing.T) {
	server := httptest.NewServer(NewHandler(&Latest{}))
	defer server.Close()

	client, err := Dial("ws" + strings.TrimPrefix(server.URL, "http"))
	if nil != err {
		t.Fatal(err)
	}
	if err := client.Close(); nil != err {
		t.Errorf("close: %v", err)
	}
	// The close message cannot be written twice, only logged
	if err := client.Close(); nil == err {
		t.Error("second close reported no error")
	}
}

func TestDialFails(t *testing.T) {
	if _, err := Dial("ws://127.0.0.1:1/none"); nil == err {
		t.Error("dial to a closed port succeeded")
	}
}
