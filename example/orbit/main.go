package main

import (
	"fmt"
	"math"

	"github.com/akmonengine/so3"
	"github.com/akmonengine/so3/rot3"
)

func main() {
	// A body spinning about a tilted axis, advanced in 0.1° increments.
	axis := rot3.Vec3[float64]{0.3, 1, 0.2}
	step := rot3.FromAxisAngle(axis, math.Pi/1800)

	attitude := so3.Identity[rot3.Rotation[float64]]()
	for i := 0; i < 36000; i++ {
		attitude = so3.Compose(step, attitude)
	}

	fmt.Printf("norm after 36000 compositions: %.17f\n", attitude.Norm())
	fmt.Printf("+X now points at: %v\n", attitude.Rotate(rot3.Vec3[float64]{1, 0, 0}))

	// Relative rotation from the current attitude to a target.
	target := rot3.FromAxisAngle(rot3.Vec3[float64]{0, 0, 1}, math.Pi/4)
	delta := so3.Between(attitude, target)
	reached := so3.Compose(attitude, delta)
	fmt.Printf("target reached: %v\n", reached.ApproxEqual(target, rot3.Epsilon[float64]()))
}
