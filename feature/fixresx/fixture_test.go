package fixresx

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"fixresx/core/reconcile"
	"fixresx/core/workspace"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	testBase    = "Forms/MainForm"
	testLicense = "<?xml version=\"1.0\" encoding=\"utf-8\"?>\n<root>\n  <!-- LICENSE -->\n"

	canonicalDesigner = `partial class MainForm
{
    private void InitializeComponent()
    {
        this.okButton.Size = new System.Drawing.Size(75, 23);
        this.ClientSize = new System.Drawing.Size(284, 261);
        this.cancelButton.Location = new System.Drawing.Point(93, 40);
    }
}
`
	templateDesigner = "// localized designer\n"
)

var testTime = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func resxLines(body ...string) string {
	header := []string{
		`<?xml version="1.0" encoding="utf-8"?>`,
		`<root>`,
		`  <!-- Microsoft ResX Schema -->`,
	}
	return strings.Join(append(header, body...), "\n") + "\n"
}

var templateResx = resxLines(
	`  <data name="okButton.Size" type="System.Drawing.Size, System.Drawing">`,
	`    <value>100, 34</value>`,
	`  </data>`,
	`  <data name="panel1.Padding" type="System.Windows.Forms.Padding, System.Windows.Forms">`,
	`    <value>3, 3, 3, 3</value>`,
	`  </data>`,
	`  <data name="$this.ClientSize" type="System.Drawing.Size, System.Drawing">`,
	`    <value>400, 300</value>`,
	`  </data>`,
	`</root>`,
)

// unexpectedResx carries a geometry entry the canonical designer does not set.
var unexpectedResx = resxLines(
	`  <data name="okButton.Size" type="System.Drawing.Size, System.Drawing">`,
	`    <value>100, 34</value>`,
	`  </data>`,
	`  <data name="label1.Size" type="System.Drawing.Size, System.Drawing">`,
	`    <value>50, 13</value>`,
	`  </data>`,
	`</root>`,
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// setupWorkspace lays out the three directories for testBase with the given
// template resx and returns the service config and resolved paths.
func setupWorkspace(t *testing.T, resx string) (ServiceConfig, workspace.Paths) {
	t.Helper()
	root := t.TempDir()
	cfg := ServiceConfig{
		Paths: workspace.Config{
			CanonicalDir: filepath.Join(root, "PreLocalization"),
			TemplateDir:  filepath.Join(root, "PreReverts"),
			WorkingDir:   filepath.Join(root, "ResxFixes"),
			LogPath:      filepath.Join(root, "FixResx.log"),
		},
		Reconcile: reconcile.Config{Strict: true},
		License:   []byte(testLicense),
	}

	paths, err := cfg.Paths.Resolve(testBase)
	require.NoError(t, err)

	writeFile(t, paths.CanonicalDesigner, canonicalDesigner)
	writeFile(t, paths.TemplateDesigner, templateDesigner)
	writeFile(t, paths.TemplateResx, resx)
	writeFile(t, paths.WorkingDesigner, "// stale working designer\n")
	writeFile(t, paths.WorkingResx, "stale resx\n")

	return cfg, paths
}

func newTestService(cfg ServiceConfig, archive *Archive, history *History) *Service {
	svc := NewService(cfg, zap.NewNop(), archive, history)
	svc.now = func() time.Time { return testTime }
	return svc
}
