/*Package interval parses samtools-style region strings and tests BEDPE
  coordinates against them.
  Coordinates are int64 to match the bedpe package.
*/
package interval
