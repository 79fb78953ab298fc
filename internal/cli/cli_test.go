package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/evopath/planner"
)

const testRoster = `creatures:
  - slug: agumon
    name: 亚古兽
    name_ja: アグモン
    name_en: Agumon
    stage: rookie
    evolves_to: [暴龙兽, 未知兽]
  - slug: greymon
    name: 暴龙兽
    name_ja: グレイモン
    name_en: Greymon
    evolves_from: [亚古兽]
    evolves_to: [Metal Greymon]
  - slug: metalgreymon
    name: 机械暴龙兽
    name_en: MetalGreymon
    aliases: [Metal Greymon]
    evolves_to: [Agumon]
  - slug: botamon
    name: 黑球兽
`

type CLISuite struct {
	suite.Suite
	roster string
}

func (s *CLISuite) SetupSuite() {
	logger.SetOutput(io.Discard)
}

func (s *CLISuite) TearDownSuite() {
	logger.SetOutput(os.Stderr)
}

func (s *CLISuite) SetupTest() {
	s.roster = filepath.Join(s.T().TempDir(), "roster.yaml")
	s.Require().NoError(os.WriteFile(s.roster, []byte(testRoster), 0o644))
}

func (s *CLISuite) run(fn func([]string, io.Writer) error, args ...string) (string, error) {
	var buf bytes.Buffer
	err := fn(append([]string{"-roster", s.roster}, args...), &buf)
	return buf.String(), err
}

func (s *CLISuite) TestPlanText() {
	out, err := s.run(RunPlan, "-locale", "en", "Agumon", "机械暴龙兽")
	s.Require().NoError(err)
	s.Contains(out, "Agumon → MetalGreymon (minSteps): 1 path(s)")
	s.Contains(out, "1. Agumon → Greymon → MetalGreymon  steps=2 score=2.0")
}

func (s *CLISuite) TestPlanJSONMultiplePairs() {
	out, err := s.run(RunPlan, "-json", "agumon", "greymon", "greymon", "agumon")
	s.Require().NoError(err)

	var got [][]planner.Plan
	s.Require().NoError(json.Unmarshal([]byte(out), &got))
	s.Require().Len(got, 2)
	s.Equal([]string{"agumon", "greymon"}, got[0][0].Nodes)
	s.Equal([]string{"greymon", "metalgreymon", "agumon"}, got[1][0].Nodes)
}

func (s *CLISuite) TestPlanUsage() {
	_, err := s.run(RunPlan, "agumon")
	s.ErrorIs(err, ErrUsage)

	_, err = s.run(RunPlan, "agumon", "亚古兽")
	s.ErrorIs(err, planner.ErrSameEndpoint)

	_, err = s.run(RunPlan, "-mode", "fastest", "agumon", "greymon")
	s.Error(err)
}

func (s *CLISuite) TestResolve() {
	out, err := s.run(RunResolve, "グレイモン", "metalgreymom")
	s.Require().NoError(err)
	s.Contains(out, "グレイモン\tgreymon\t暴龙兽")
	s.Contains(out, "metalgreymom\t-\tunresolved")
	s.Contains(out, "? metalgreymon (metalgreymon, distance 1)")
}

func (s *CLISuite) TestNeighborhood() {
	out, err := s.run(RunNeighborhood, "agumon")
	s.Require().NoError(err)

	var g struct {
		Center string `json:"center"`
		Nodes  []struct {
			ID   string `json:"id"`
			Role string `json:"role"`
		} `json:"nodes"`
	}
	s.Require().NoError(json.Unmarshal([]byte(out), &g))
	s.Equal("agumon", g.Center)
	s.Require().Len(g.Nodes, 3)
	s.Equal("暴龙兽", g.Nodes[1].ID)
	s.Equal("successor", g.Nodes[2].Role)

	out, err = s.run(RunNeighborhood, "botamon")
	s.Require().NoError(err)
	s.Empty(out)

	_, err = s.run(RunNeighborhood, "nobody")
	s.Error(err)
}

func (s *CLISuite) TestCheck() {
	out, err := s.run(RunCheck)
	s.Require().NoError(err)
	s.Contains(out, "cycle: agumon → greymon → metalgreymon → agumon")
	s.Contains(out, `unresolved: agumon → "未知兽"`)

	_, err = s.run(RunCheck, "-strict")
	s.ErrorIs(err, ErrCheckFailed)
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLISuite))
}

func TestRunHistory_Memory(t *testing.T) {
	logger.SetOutput(io.Discard)
	defer logger.SetOutput(os.Stderr)

	var buf bytes.Buffer
	require.NoError(t, RunHistory(nil, &buf))
	assert.Empty(t, buf.String())
	require.NoError(t, RunHistory([]string{"-clear"}, &buf))
}
