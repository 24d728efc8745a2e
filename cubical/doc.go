// Copyright 2020 Grail Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

/*Package cubical computes the persistent homology of the lower-star
  filtration of a 2-dimensional cubical complex built from a grayscale image.

  The complex's 0-cells are the image's pixels; 1-cells are the
  horizontal/vertical edges between adjacent pixels, and 2-cells are the unit
  squares spanned by four mutually adjacent pixels. Every cell's birth is the
  max of its vertices' pixel values, and a global
  threshold caps the filtration: cells born at the threshold are treated as
  never appearing, and homology classes still alive at the threshold are
  reported as essential (dimension tag -1).

  Two independent algorithms are provided for computing the pairs: a
  union-find-based "link-find" pass for dimension 0 followed by matrix
  reduction for dimension 1, and a pure matrix-reduction pass ("compute
  pairs") for both dimensions. Both are expected to emit identical pair
  multisets; Persistence2D lets the caller pick either one.
*/
package cubical
