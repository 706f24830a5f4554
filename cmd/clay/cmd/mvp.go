package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spaghettifunk/clay/engine/core"
	"github.com/spaghettifunk/clay/engine/math"
	"github.com/spaghettifunk/clay/engine/renderer"
)

func newMVPCmd(opts *options) *cobra.Command {
	var (
		at       float64
		node     string
		vertices bool
	)

	mvpCmd := &cobra.Command{
		Use:   "mvp",
		Short: "Print the matrices uploaded for one frame",
		Long: `Poses the scene at --time seconds, draws one frame into a recording
sink and prints proj, view and the model/mvp pair of every node.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, s, err := opts.loadScene()
			if err != nil {
				printError("failed to load scene", err)
				return err
			}
			if node != "" {
				if _, ok := s.Node(node); !ok {
					err := fmt.Errorf("%w: node %q", core.ErrNotFound, node)
					printError("unknown node", err)
					return err
				}
			}

			s.Animate(at)
			packet := s.RenderPacket(0)
			sink := renderer.NewRecordingSink()
			if err := renderer.New(sink).DrawFrame(packet); err != nil {
				printError("failed to draw frame", err)
				return err
			}

			uploads := sink.FrameUploads(1)
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%s @ %.3fs", opts.scenePath, at)))
			printMatrix(w, uploads[0].Name, math.Mat4{Data: uploads[0].Data})
			printMatrix(w, uploads[1].Name, math.Mat4{Data: uploads[1].Data})

			for i, geometry := range packet.Geometries {
				if node != "" && geometry.Name != node {
					continue
				}
				model := uploads[2+2*i]
				mvp := uploads[3+2*i]
				printMatrix(w, fmt.Sprintf("%s (%s)", model.Name, geometry.Name), math.Mat4{Data: model.Data})
				printMatrix(w, fmt.Sprintf("%s (%s)", mvp.Name, geometry.Name), math.Mat4{Data: mvp.Data})

				if vertices {
					n, _ := s.Node(geometry.Name)
					for j, v := range math.GeometryTransform(n.Vertices, math.Mat4{Data: mvp.Data}) {
						printStat(w, fmt.Sprintf("clip[%d]", j), "%s", v)
					}
				}
			}
			return nil
		},
	}

	mvpCmd.Flags().Float64VarP(&at, "time", "t", 0, "seconds into the animation")
	mvpCmd.Flags().StringVarP(&node, "node", "n", "", "only print this node")
	mvpCmd.Flags().BoolVar(&vertices, "vertices", false, "also print the clip-space vertices")
	return mvpCmd
}
