package stations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeStationVisuals(t *testing.T) {
	t.Run("empty sequence", func(t *testing.T) {
		visuals := ComputeStationVisuals(nil)
		assert.NotNil(t, visuals)
		assert.Empty(t, visuals)
	})

	t.Run("single station is never through", func(t *testing.T) {
		visuals := ComputeStationVisuals([]Station{{Color1: "#F00", Color2: "#00F", Through: true}})
		require.Len(t, visuals, 1)
		assert.False(t, visuals[0].Through)
		assert.Equal(t, "#F00", visuals[0].MarkerTop)
		assert.Equal(t, "#F00", visuals[0].MarkerBottom)
		assert.Nil(t, visuals[0].Connector)
	})

	t.Run("two stations force both termini to regular", func(t *testing.T) {
		visuals := ComputeStationVisuals([]Station{
			{Color1: "#F00", Color2: "#00F", Through: true},
			{Color1: "#0F0", Color2: "#FF0", Through: true},
		})
		require.Len(t, visuals, 2)
		assert.False(t, visuals[0].Through)
		assert.False(t, visuals[1].Through)

		connectors := 0
		for _, v := range visuals {
			if v.Connector != nil {
				connectors++
			}
		}
		assert.Equal(t, 1, connectors)
		assert.Equal(t, &Connector{Top: "#F00", Bottom: "#0F0"}, visuals[0].Connector)
	})

	t.Run("through station in the middle", func(t *testing.T) {
		visuals := ComputeStationVisuals([]Station{
			{Color1: "#00FF00"},
			{Color1: "#FF0000", Color2: "#0000FF", Through: true},
			{Color1: "#FFFF00"},
		})
		require.Len(t, visuals, 3)

		middle := visuals[1]
		assert.True(t, middle.Through)
		assert.Equal(t, "#FF0000", middle.MarkerTop)
		assert.Equal(t, "#0000FF", middle.MarkerBottom)

		// Arrival into the through station uses its first color.
		assert.Equal(t, Connector{Top: "#00FF00", Bottom: "#FF0000"}, *visuals[0].Connector)
		// Departure uses its second color.
		assert.Equal(t, Connector{Top: "#0000FF", Bottom: "#FFFF00"}, *visuals[1].Connector)
		assert.Nil(t, visuals[2].Connector)
	})

	t.Run("consecutive through stations", func(t *testing.T) {
		visuals := ComputeStationVisuals([]Station{
			{Color1: "#111"},
			{Color1: "#222", Color2: "#333", Through: true},
			{Color1: "#444", Color2: "#555", Through: true},
			{Color1: "#666"},
		})
		require.Len(t, visuals, 4)
		assert.Equal(t, Connector{Top: "#333", Bottom: "#444"}, *visuals[1].Connector)
		assert.Equal(t, Connector{Top: "#555", Bottom: "#666"}, *visuals[2].Connector)
	})

	t.Run("flagged terminus keeps a solid marker", func(t *testing.T) {
		visuals := ComputeStationVisuals([]Station{
			{Color1: "#111"},
			{Color1: "#222"},
			{Color1: "#333", Color2: "#444", Through: true},
		})
		last := visuals[2]
		assert.False(t, last.Through)
		assert.Equal(t, "#333", last.MarkerBottom)
	})

	t.Run("missing colors default", func(t *testing.T) {
		visuals := ComputeStationVisuals([]Station{
			{},
			{Color1: "#ABC", Through: true},
			{},
		})
		assert.Equal(t, "#888", visuals[0].MarkerTop)
		assert.True(t, visuals[1].Through)
		assert.Equal(t, "#ABC", visuals[1].MarkerBottom, "second color defaults to the first")
		assert.Equal(t, Connector{Top: "#ABC", Bottom: "#888"}, *visuals[1].Connector)
	})
}

func TestBackgrounds(t *testing.T) {
	t.Run("regular marker is solid", func(t *testing.T) {
		assert.Equal(t, "#F00", MarkerBackground(Visual{MarkerTop: "#F00", MarkerBottom: "#F00"}))
	})

	t.Run("through marker is split with a divider", func(t *testing.T) {
		got := MarkerBackground(Visual{Through: true, MarkerTop: "#F00", MarkerBottom: "#00F"})
		assert.Equal(t,
			"linear-gradient(to bottom, #F00 0%, #F00 49%, white 49%, white 51%, #00F 51%, #00F 100%)",
			got)
	})

	t.Run("connector is split in half", func(t *testing.T) {
		assert.Equal(t,
			"linear-gradient(to bottom, #F00 0%, #F00 50%, #00F 50%, #00F 100%)",
			ConnectorBackground(Connector{Top: "#F00", Bottom: "#00F"}))
	})
}
