// Package huffcode implements Huffman coding over in-memory symbol
// sequences.  Codes are derived from an explicit Huffman tree, and encoded
// output is a textual bit-string of '0' and '1' digits.
//
// The pipeline is:
//
//     CountSymbols → BuildTreeFromTable → DeriveCodes → Encode / Decode
//
// NewCodec runs the whole pipeline in one call.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffcode
