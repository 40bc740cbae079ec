// Package despeckle removes black regions connected to the border of a
// binary raster image, the classic cleanup for dark scanning artifacts
// along the edges of a scanned page.
//
// What:
//
//   - Despeckle mutates a bitgrid.Grid in place: every black (1) cell
//     reachable from a border cell through a chain of same-colored,
//     edge-adjacent cells is cleared to white (0).
//   - Interior black regions — those separated from the border by white —
//     are left untouched.
//   - Connectivity is 4-directional by default; WithConnectivity(Conn8)
//     extends reachability to diagonals.
//
// How:
//
//   - Breadth-first search with an explicit FIFO queue. Black border cells
//     seed the queue; expansion walks neighbors. A cell is marked visited
//     and cleared the moment it is enqueued, never at dequeue, so no cell
//     enters the queue twice — corners, 1×1 images and re-runs included.
//
// Complexity:
//
//   - O(W×H) time, O(W×H) auxiliary memory (visited grid + queue);
//     each cell is enqueued at most once.
//
// Properties:
//
//   - Idempotent: a second run clears nothing.
//   - Order-independent: the set of cleared cells is the connected closure
//     of the border's black cells, regardless of queue ordering.
//
// Errors:
//
//   - ErrNilGrid: the image grid is nil.
//   - ErrOptionViolation: an invalid Option value was supplied.
package despeckle
