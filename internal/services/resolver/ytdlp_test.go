package resolver

import (
	"fmt"
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if os.Getenv("GO_TEST_MODE_YTDLP") == "1" {
		fmt.Fprint(os.Stdout, os.Getenv("MOCK_STDOUT"))
		fmt.Fprint(os.Stderr, os.Getenv("MOCK_STDERR"))
		os.Exit(0)
	}

	os.Exit(m.Run())
}

func mockExecCommand(t *testing.T, stdout, stderr string) {
	originalExecCommand := execCommand
	t.Cleanup(func() {
		execCommand = originalExecCommand
	})

	execCommand = func(command string, args ...string) *exec.Cmd {
		cmd := exec.Command(os.Args[0], "-test.run=TestMain")
		cmd.Env = []string{
			"GO_TEST_MODE_YTDLP=1",
			"MOCK_STDOUT=" + stdout,
			"MOCK_STDERR=" + stderr,
		}
		return cmd
	}
}

func TestYTDLPResolver_Resolve(t *testing.T) {
	testCases := []struct {
		name        string
		mockStdout  string
		mockStderr  string
		expectErr   bool
		expectedURL string
	}{
		{
			name:        "Successful URL fetch",
			mockStdout:  "https://example.com/stream.m4a\n",
			expectedURL: "https://example.com/stream.m4a",
		},
		{
			name:        "Multiple URLs keeps the first",
			mockStdout:  "https://example.com/audio.m4a\nhttps://example.com/video.mp4\n",
			expectedURL: "https://example.com/audio.m4a",
		},
		{
			name:       "yt-dlp returns an error",
			mockStderr: "ERROR: This video is private.",
			expectErr:  true,
		},
		{
			name:      "Empty output from yt-dlp",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockExecCommand(t, tc.mockStdout, tc.mockStderr)
			r := NewYTDLPResolver()

			url, err := r.Resolve("test_id")

			if tc.expectErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.expectedURL, url)
			}
		})
	}
}
