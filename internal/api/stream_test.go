package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinecam/pkg/camera"
)

func TestStreamBroadcast(t *testing.T) {
	h := NewStreamHandler()
	defer h.Close()

	srv := httptest.NewServer(http.HandlerFunc(h.HandleStream))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	// Registration happens in the upgrade handler; give it a moment.
	require.Eventually(t, func() bool { return h.ClientCount() == 1 },
		time.Second, 10*time.Millisecond)

	sent := StreamFrame{
		Pose: camera.Pose{X: 12, Y: 34, Z: -56, Heading: 270, Zoom: 1.2},
		Status: camera.Status{
			Mode:        camera.ModeManual,
			Phase:       camera.PhaseDrift,
			ShotName:    "Wing Left",
			ControlHeld: true,
		},
	}
	h.Broadcast(sent)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var got StreamFrame
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, sent.Pose, got.Pose)
	assert.Equal(t, sent.Status.ShotName, got.Status.ShotName)
	assert.True(t, got.Status.ControlHeld)
}

func TestStreamDropsClosedClients(t *testing.T) {
	h := NewStreamHandler()
	defer h.Close()

	srv := httptest.NewServer(http.HandlerFunc(h.HandleStream))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)

	require.Eventually(t, func() bool { return h.ClientCount() == 1 },
		time.Second, 10*time.Millisecond)

	conn.Close()

	// The reader loop notices the close and unregisters the client.
	require.Eventually(t, func() bool { return h.ClientCount() == 0 },
		2*time.Second, 10*time.Millisecond)

	// Broadcasting with no clients is a no-op.
	h.Broadcast(StreamFrame{})
}
