// Package region implements spherical containment oracles (caps and
// polygons) and the concurrent vertex-marking helper that refinement
// policies use to drive extra subdivision near a region of interest.
package region
