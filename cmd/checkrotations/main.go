// Command checkrotations sweeps Euler angles over all six rotation orders
// and reports the worst rotation-matrix round-trip error through the Euler
// extraction and the quaternion conversion.
package main

import (
	"flag"
	"fmt"
	"math"

	polimath "github.com/cszach/poli-math"
)

var orders = []polimath.RotationOrder{
	polimath.OrderXYZ,
	polimath.OrderXZY,
	polimath.OrderYXZ,
	polimath.OrderYZX,
	polimath.OrderZXY,
	polimath.OrderZYX,
}

func main() {
	steps := flag.Int("steps", 24, "Sweep steps per axis over [-π, π]")
	flag.Parse()

	fmt.Printf("%-6s %-14s %-14s\n", "order", "via Euler", "via quaternion")

	for _, order := range orders {
		var worstEuler, worstQuat float64

		for i := 0; i <= *steps; i++ {
			for j := 0; j <= *steps; j++ {
				for k := 0; k <= *steps; k++ {
					e := polimath.Euler{
						X:     angle(i, *steps),
						Y:     angle(j, *steps),
						Z:     angle(k, *steps),
						Order: order,
					}
					m := polimath.Matrix4FromEuler(e)

					back := polimath.EulerFromRotationMatrix(m, order)
					d := matrixDiff(m, polimath.Matrix4FromEuler(back))
					if d > worstEuler {
						worstEuler = d
					}

					q := polimath.QuaternionFromEuler(e)
					d = matrixDiff(m, polimath.Matrix4FromQuaternion(q))
					if d > worstQuat {
						worstQuat = d
					}
				}
			}
		}

		fmt.Printf("%-6s %-14.3g %-14.3g\n", order, worstEuler, worstQuat)
	}
}

func angle(i, steps int) float32 {
	return float32(-math.Pi + 2*math.Pi*float64(i)/float64(steps))
}

func matrixDiff(a, b polimath.Matrix4) float64 {
	var worst float64
	for i := range a {
		if d := math.Abs(float64(a[i] - b[i])); d > worst {
			worst = d
		}
	}
	return worst
}
