package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWriter(t *testing.T) {
	t.Run("creating the experiment directory", func(t *testing.T) {
		root := t.TempDir()

		w, err := NewWriter(root, "depth")

		require.NoError(t, err)
		require.Equal(t, filepath.Join(root, "depth"), filepath.Dir(w.Dir()))
		info, err := os.Stat(w.Dir())
		require.NoError(t, err)
		require.True(t, info.IsDir())
	})

	t.Run("failing under a file", func(t *testing.T) {
		root := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(root, nil, 0644))

		_, err := NewWriter(root, "depth")

		require.ErrorContains(t, err, "failed to create directory")
	})

	t.Run("writing move records", func(t *testing.T) {
		w, err := NewWriter(t.TempDir(), "moves")
		require.NoError(t, err)

		err = w.WriteMoveRecords([]MoveRecord{{
			Game: 3,
			MoveMetric: MoveMetric{
				Step:   1,
				Player: "White",
				Move:   "a3-c5-c3",
				SearchMetric: SearchMetric{
					Depth: 2, Duration: time.Millisecond, Nodes: 10, Leaves: 40, Cutoffs: 2, Value: -1,
				},
			},
		}})
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(w.Dir(), "move_records.csv"))
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		require.Equal(t, []string{
			"game,step,player,move,depth,duration,nodes,leaves,cutoffs,episodes,playouts,value",
			"3,1,White,a3-c5-c3,2,1ms,10,40,2,0,0,-1",
		}, lines)
	})
}

func TestCollector(t *testing.T) {
	t.Run("counting a search", func(t *testing.T) {
		c := NewCollector()
		c.Start(3)
		c.AddNode()
		c.AddNode()
		c.AddLeaf()
		c.AddCutoff()
		c.AddEpisode()
		c.AddFullPlayout()

		m := c.Complete()

		require.Equal(t, 3, m.Depth)
		require.Equal(t, 2, m.Nodes)
		require.Equal(t, 1, m.Leaves)
		require.Equal(t, 1, m.Cutoffs)
		require.Equal(t, 1, m.Episodes)
		require.Equal(t, 1, m.Playouts)
	})

	t.Run("restarting clears counts", func(t *testing.T) {
		c := NewCollector()
		c.Start(1)
		c.AddNode()
		c.Start(2)

		require.Zero(t, c.Complete().Nodes)
	})

	t.Run("dummy collects nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(4)
		c.AddNode()

		require.Equal(t, SearchMetric{}, c.Complete())
	})
}
