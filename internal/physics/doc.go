// Package physics provides the Cutoff scattering model.
//
// The model scatters isotropically with a constant cross-section for
// neutrons above a wavelength threshold and not at all below it. Materials
// opt in through a custom data section:
//
//	@CUSTOM_CUTOFF
//	<sigma in barn> <cutoff wavelength in Aa>
//
// Use [IsApplicable] to check a material and [CreateFromInfo] to build a
// [Model] from it.
package physics
