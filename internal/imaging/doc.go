// Package imaging connects the Canny core to real images.
//
// It owns everything the edge pipeline treats as an external collaborator:
// decoding files (with a cache), cropping a region of interest, Gaussian
// pre-blur, and encoding edge maps, gradient fields and overlays as base64 PNG
// for the MCP server.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with (0,0) at the top-left corner, X
// increasing rightward and Y increasing downward. Regions use an inclusive
// top-left (x1,y1) and an exclusive bottom-right (x2,y2). Results for a region
// are anchored at (0,0) of that region.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. The detection functions keep no
// state and can run concurrently on different images.
//
// # Error Handling
//
// Errors from the core wrap canny.ErrPrecondition, canny.ErrUnsupportedMode or
// canny.ErrNumericDegeneracy and can be tested with errors.Is. Region,
// color and I/O failures are returned as plain wrapped errors.
package imaging
