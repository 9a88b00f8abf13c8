package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDocument = `{
  "data": {
    "company": {
      "acme": {
        "company_id": "c1",
        "company_name": "Acme Robotics",
        "industry": "Robotics",
        "job_postings": [
          {
            "job_posting_id": "j1",
            "job_title": "Backend Engineer",
            "location": "Remote",
            "promises": [
              {"promise_id": "p1", "promise_text": "Reply within two weeks", "promise_type": "response_time"}
            ]
          }
        ]
      }
    },
    "vouch": {
      "v1": {"vouch_id": "v1", "vouch_statement": "Great onboarding", "claim_type": "culture"}
    }
  }
}`

// execute runs the root command with args against an isolated HOME and
// returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		configPath, prefsPath, sourceFlag, startTab = "", "", "", ""
		watch, verbose = false, false
		searchKind, searchJSON, flattenJSON = "", false, false
	}()

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeDocument(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "consolidated.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestSearchCmd_Use(t *testing.T) {
	assert.Equal(t, "search [query]", searchCmd.Use)
}

func TestSearchCmd_HasTypeFlag(t *testing.T) {
	flag := searchCmd.Flags().Lookup("type")
	require.NotNil(t, flag, "type flag should exist")
	assert.Equal(t, "t", flag.Shorthand)
	assert.Equal(t, "", flag.DefValue)
}

func TestSearchCmd_RejectsExtraArgs(t *testing.T) {
	_, _, err := execute(t, "search", "a", "b")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts at most 1 arg(s)")
}

func TestSearchCmd_MatchesCaseInsensitively(t *testing.T) {
	path := writeDocument(t, testDocument)

	out, _, err := execute(t, "--source", path, "search", "BACKEND")

	require.NoError(t, err)
	assert.Contains(t, out, "[1] Acme Robotics (company)")
	assert.Contains(t, out, "[2] Backend Engineer (job_posting)")
	assert.Contains(t, out, "2 of 4 records")
	assert.NotContains(t, out, "Great onboarding")
}

func TestSearchCmd_TypeFilter(t *testing.T) {
	path := writeDocument(t, testDocument)

	out, _, err := execute(t, "--source", path, "search", "--type", "vouch")

	require.NoError(t, err)
	assert.Contains(t, out, "Great onboarding")
	assert.Contains(t, out, "1 of 4 records")
	assert.NotContains(t, out, "Backend Engineer")
}

func TestSearchCmd_UnknownType(t *testing.T) {
	path := writeDocument(t, testDocument)

	_, _, err := execute(t, "--source", path, "search", "--type", "intern")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown entity type")
}

func TestSearchCmd_NoResults(t *testing.T) {
	path := writeDocument(t, testDocument)

	out, _, err := execute(t, "--source", path, "search", "zeppelin")

	require.NoError(t, err)
	assert.Contains(t, out, "No results found.")
}

func TestSearchCmd_JSON(t *testing.T) {
	path := writeDocument(t, testDocument)

	out, _, err := execute(t, "--source", path, "search", "two weeks", "--type", "promise", "--json")
	require.NoError(t, err)

	var got []recordJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "promise", string(got[0].Kind))
	assert.Equal(t, "p1", got[0].ID)
	assert.Equal(t, "Acme Robotics → Backend Engineer", got[0].Parent)
	assert.Empty(t, got[0].SearchText)
}

func TestSearchCmd_JSONEmptyIsArray(t *testing.T) {
	path := writeDocument(t, testDocument)

	out, _, err := execute(t, "--source", path, "search", "zeppelin", "--json")

	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)
}

func TestSearchCmd_LoadFailure(t *testing.T) {
	path := writeDocument(t, `{"data": [`)

	out, errOut, err := execute(t, "--source", path, "search", "acme")

	require.ErrorIs(t, err, errReported)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "Error loading data: ")
}

func TestSearchCmd_UnsupportedSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.csv")

	_, errOut, err := execute(t, "--source", path, "search")

	require.ErrorIs(t, err, errReported)
	assert.Contains(t, errOut, "Error loading data: ")
}

func TestFlattenCmd_PrintsEveryRecordInOrder(t *testing.T) {
	path := writeDocument(t, testDocument)

	out, _, err := execute(t, "--source", path, "flatten")

	require.NoError(t, err)
	assert.Contains(t, out, "[1] Acme Robotics (company)")
	assert.Contains(t, out, "[2] Backend Engineer (job_posting)")
	assert.Contains(t, out, "[3] Reply within two weeks (promise)")
	assert.Contains(t, out, "[4] Great onboarding (vouch)")
}

func TestFlattenCmd_JSONIncludesSearchText(t *testing.T) {
	path := writeDocument(t, testDocument)

	out, _, err := execute(t, "--source", path, "flatten", "--json")
	require.NoError(t, err)

	var got []recordJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 4)
	assert.Equal(t, "company", string(got[0].Kind))
	assert.Contains(t, got[0].SearchText, "acme robotics")
	assert.Empty(t, got[3].Parent)
}

func TestFlattenCmd_EmptyDocument(t *testing.T) {
	path := writeDocument(t, `{}`)

	out, _, err := execute(t, "--source", path, "flatten")

	require.NoError(t, err)
	assert.Contains(t, out, "No results found.")
}

func TestRootCmd_UnknownStartTab(t *testing.T) {
	path := writeDocument(t, testDocument)

	_, _, err := execute(t, "--source", path, "--tab", "settings")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "start tab")
}

func TestVersionCmd(t *testing.T) {
	out, _, err := execute(t, "version")

	require.NoError(t, err)
	assert.Equal(t, "hiremap version dev\n", out)
}
