package fixresx

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"fixresx/core/database"
	"fixresx/core/reconcile"
	"fixresx/core/storage"
	"fixresx/core/storage/mocks"
	"fixresx/core/workspace"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type failingInstaller struct{}

func (failingInstaller) Install(workspace.Paths) error {
	return errors.New("access denied")
}

func TestService_Run(t *testing.T) {
	cfg, paths := setupWorkspace(t, templateResx)
	svc := newTestService(cfg, nil, nil)

	report, err := svc.Run(context.Background(), testBase, RunOptions{})
	require.NoError(t, err)

	assert.True(t, report.Installed)
	assert.True(t, report.Strict)
	assert.NotEmpty(t, report.ID)
	assert.Equal(t, 2, report.Count(reconcile.OutcomeReplaced))
	assert.Equal(t, 1, report.Count(reconcile.OutcomeSkipped))
	assert.Equal(t, []string{"cancelButton.Location"}, report.Orphans.DesignerOnly)
	assert.Empty(t, report.Orphans.ResxOnly)

	wantResx := testLicense + strings.Join([]string{
		`  <data name="okButton.Size" type="System.Drawing.Size, System.Drawing">`,
		`    <value>75, 23</value>`,
		`  </data>`,
		`  <data name="$this.ClientSize" type="System.Drawing.Size, System.Drawing">`,
		`    <value>284, 261</value>`,
		`  </data>`,
		`</root>`,
	}, "\n") + "\n"
	assert.Equal(t, wantResx, readFile(t, paths.WorkingResx))
	assert.Equal(t, templateDesigner, readFile(t, paths.WorkingDesigner))
	assert.NoFileExists(t, paths.TempResx)

	wantLog := strings.Join([]string{
		"FixResx - Forms/MainForm - 2026-01-02 03:04:05",
		"",
		"okButton.Size => 75, 23",
		"panel1.Padding skipped",
		"this.ClientSize => 284, 261",
		"*** cancelButton.Location in Designer.cs but not resx",
	}, "\n") + "\n\n"
	assert.Equal(t, wantLog, readFile(t, cfg.Paths.LogPath))
}

func TestService_RunAppendsLog(t *testing.T) {
	cfg, _ := setupWorkspace(t, templateResx)
	svc := newTestService(cfg, nil, nil)

	_, err := svc.Run(context.Background(), testBase, RunOptions{})
	require.NoError(t, err)
	first := readFile(t, cfg.Paths.LogPath)

	_, err = svc.Run(context.Background(), testBase, RunOptions{})
	require.NoError(t, err)
	assert.Equal(t, first+first, readFile(t, cfg.Paths.LogPath))
}

func TestService_DryRun(t *testing.T) {
	cfg, paths := setupWorkspace(t, templateResx)
	svc := newTestService(cfg, nil, nil)

	report, err := svc.Run(context.Background(), testBase, RunOptions{DryRun: true})
	require.NoError(t, err)

	assert.False(t, report.Installed)
	assert.Equal(t, "stale resx\n", readFile(t, paths.WorkingResx))
	assert.Contains(t, readFile(t, paths.TempResx), "<value>75, 23</value>")
}

func TestService_StrictAbort(t *testing.T) {
	cfg, paths := setupWorkspace(t, unexpectedResx)
	svc := newTestService(cfg, nil, nil)

	report, err := svc.Run(context.Background(), testBase, RunOptions{})
	require.Error(t, err)
	assert.Nil(t, report)
	assert.True(t, errors.Is(err, reconcile.ErrUnexpectedProperty))
	assert.Contains(t, err.Error(), "label1.Size")

	assert.NoFileExists(t, paths.TempResx)
	assert.NoFileExists(t, cfg.Paths.LogPath)
	assert.Equal(t, "stale resx\n", readFile(t, paths.WorkingResx))
}

func TestService_Lenient(t *testing.T) {
	cfg, paths := setupWorkspace(t, unexpectedResx)
	svc := newTestService(cfg, nil, nil)

	report, err := svc.Run(context.Background(), testBase, RunOptions{Lenient: true})
	require.NoError(t, err)

	assert.False(t, report.Strict)
	assert.Equal(t, 1, report.Count(reconcile.OutcomeUnchanged))
	assert.Equal(t, []string{"label1.Size"}, report.Orphans.ResxOnly)
	assert.Contains(t, readFile(t, paths.WorkingResx), "<value>50, 13</value>")
	assert.Contains(t, readFile(t, cfg.Paths.LogPath), "*** label1.Size in resx but not Designer.cs\n")
}

func TestService_InvalidBaseName(t *testing.T) {
	cfg, _ := setupWorkspace(t, templateResx)
	svc := newTestService(cfg, nil, nil)

	for _, base := range []string{"Forms/Missing", "../MainForm", ""} {
		_, err := svc.Run(context.Background(), base, RunOptions{})
		assert.True(t, errors.Is(err, workspace.ErrInvalidBaseName), "base %q: %v", base, err)
	}
	assert.NoFileExists(t, cfg.Paths.LogPath)
}

func TestService_MissingCanonicalDesigner(t *testing.T) {
	cfg, paths := setupWorkspace(t, templateResx)
	require.NoError(t, os.Remove(paths.CanonicalDesigner))
	svc := newTestService(cfg, nil, nil)

	_, err := svc.Run(context.Background(), testBase, RunOptions{})
	require.Error(t, err)
	assert.NoFileExists(t, paths.TempResx)
}

func TestService_InstallFailure(t *testing.T) {
	cfg, paths := setupWorkspace(t, templateResx)
	svc := newTestService(cfg, nil, nil)
	svc.installer = failingInstaller{}

	report, err := svc.Run(context.Background(), testBase, RunOptions{})
	require.NoError(t, err)

	assert.False(t, report.Installed)
	assert.Equal(t, "access denied", report.InstallError)
	assert.FileExists(t, paths.TempResx)

	log := readFile(t, cfg.Paths.LogPath)
	assert.Contains(t, log, "this.ClientSize => 284, 261\n*** Exception when replacing files: access denied ***\n*** cancelButton.Location")
}

func TestService_Archive(t *testing.T) {
	cfg, _ := setupWorkspace(t, templateResx)
	mockClient := new(mocks.Client)
	archive := NewArchive(mockClient, storage.Config{Bucket: "test-bucket", Prefix: "runs"})
	svc := newTestService(cfg, archive, nil)

	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
	mockClient.On("PutObject", mock.Anything, "test-bucket", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)

	report, err := svc.Run(context.Background(), testBase, RunOptions{})
	require.NoError(t, err)

	prefix := "runs/Forms/MainForm/" + report.ID + "/"
	assert.Equal(t, []string{prefix + "MainForm.resx", prefix + RunLogObject}, report.Archived)
	mockClient.AssertNumberOfCalls(t, "PutObject", 2)
}

func TestService_ArchiveFailureIsNotFatal(t *testing.T) {
	cfg, paths := setupWorkspace(t, templateResx)
	mockClient := new(mocks.Client)
	archive := NewArchive(mockClient, storage.Config{Bucket: "test-bucket"})
	svc := newTestService(cfg, archive, nil)

	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(false, errors.New("unreachable"))

	report, err := svc.Run(context.Background(), testBase, RunOptions{})
	require.NoError(t, err)
	assert.True(t, report.Installed)
	assert.Empty(t, report.Archived)
	assert.Contains(t, readFile(t, paths.WorkingResx), "<value>75, 23</value>")
}

func TestService_History(t *testing.T) {
	cfg, _ := setupWorkspace(t, templateResx)
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	history := NewHistory(db)
	require.NoError(t, history.Migrate(context.Background()))
	svc := newTestService(cfg, nil, history)

	report, err := svc.Run(context.Background(), testBase, RunOptions{})
	require.NoError(t, err)

	runs, err := svc.Runs(context.Background(), testBase, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, report.ID, runs[0].ID)
	assert.Equal(t, 2, runs[0].Replaced)
	assert.Equal(t, 1, runs[0].Skipped)
	assert.Equal(t, 1, runs[0].DesignerOnly)
	assert.Equal(t, 0, runs[0].ResxOnly)
}

func TestService_Disabled(t *testing.T) {
	svc := newTestService(ServiceConfig{}, nil, nil)

	_, err := svc.Runs(context.Background(), "", 10)
	assert.ErrorIs(t, err, ErrHistoryDisabled)

	_, err = svc.Archived(context.Background(), testBase)
	assert.ErrorIs(t, err, ErrArchiveDisabled)
}

func TestService_Preview(t *testing.T) {
	svc := newTestService(ServiceConfig{
		Reconcile: reconcile.Config{Strict: true},
		License:   []byte(testLicense),
	}, nil, nil)

	preview, err := svc.Preview(canonicalDesigner, templateResx, RunOptions{})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(preview.Resx, testLicense))
	assert.Contains(t, preview.Resx, "<value>284, 261</value>")
	assert.NotContains(t, preview.Resx, "panel1.Padding")
	assert.Equal(t, []string{
		"okButton.Size => 75, 23",
		"panel1.Padding skipped",
		"this.ClientSize => 284, 261",
		"*** cancelButton.Location in Designer.cs but not resx",
	}, preview.Log)

	_, err = svc.Preview(canonicalDesigner, unexpectedResx, RunOptions{})
	assert.ErrorIs(t, err, reconcile.ErrUnexpectedProperty)

	preview, err = svc.Preview(canonicalDesigner, unexpectedResx, RunOptions{Lenient: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"label1.Size"}, preview.Orphans.ResxOnly)
}

func TestService_IndexCacheFollowsDesignerChanges(t *testing.T) {
	cfg, paths := setupWorkspace(t, templateResx)
	cfg.Reconcile.CacheTTLSeconds = 60
	svc := newTestService(cfg, nil, nil)

	_, err := svc.Run(context.Background(), testBase, RunOptions{})
	require.NoError(t, err)
	assert.Contains(t, readFile(t, paths.WorkingResx), "<value>75, 23</value>")

	// A different size changes the cache key even within the mtime resolution.
	writeFile(t, paths.CanonicalDesigner, strings.Replace(canonicalDesigner, "Size(75, 23)", "Size(120, 40)", 1))

	_, err = svc.Run(context.Background(), testBase, RunOptions{})
	require.NoError(t, err)
	assert.Contains(t, readFile(t, paths.WorkingResx), "<value>120, 40</value>")
}
