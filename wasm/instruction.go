package wasm

// Opcode is the binary Opcode of an instruction. See also InstructionName
type Opcode = byte

const (
	// OpcodeUnreachable causes an unconditional trap.
	OpcodeUnreachable Opcode = 0x00
	// OpcodeNop does nothing
	OpcodeNop Opcode = 0x01
	// OpcodeBlock brackets a sequence of instructions. A branch instruction on a block label breaks out to after its
	// OpcodeEnd.
	OpcodeBlock Opcode = 0x02
	// OpcodeLoop brackets a sequence of instructions. A branch instruction on a loop label will jump back to the
	// beginning of its block.
	OpcodeLoop Opcode = 0x03
	// OpcodeIf brackets a sequence of instructions. When the top of the stack evaluates to 1, the block is executed.
	// Zero jumps to the optional OpcodeElse. A branch instruction on an if label breaks out to after its OpcodeEnd.
	OpcodeIf Opcode = 0x04
	// OpcodeElse brackets a sequence of instructions enclosed by an OpcodeIf. A branch instruction on a then label
	// breaks out to after the OpcodeEnd on the enclosing OpcodeIf.
	OpcodeElse Opcode = 0x05
	// OpcodeEnd terminates a control instruction OpcodeBlock, OpcodeLoop or OpcodeIf, or the implicit outer scope of a
	// function body or constant expression.
	OpcodeEnd Opcode = 0x0b

	OpcodeBr           Opcode = 0x0c
	OpcodeBrIf         Opcode = 0x0d
	OpcodeBrTable      Opcode = 0x0e
	OpcodeReturn       Opcode = 0x0f
	OpcodeCall         Opcode = 0x10
	OpcodeCallIndirect Opcode = 0x11

	// parametric instructions

	OpcodeDrop   Opcode = 0x1a
	OpcodeSelect Opcode = 0x1b

	// variable instructions

	OpcodeLocalGet  Opcode = 0x20
	OpcodeLocalSet  Opcode = 0x21
	OpcodeLocalTee  Opcode = 0x22
	OpcodeGlobalGet Opcode = 0x23
	OpcodeGlobalSet Opcode = 0x24

	// memory instructions

	OpcodeI32Load    Opcode = 0x28
	OpcodeI64Load    Opcode = 0x29
	OpcodeF32Load    Opcode = 0x2a
	OpcodeF64Load    Opcode = 0x2b
	OpcodeI32Load8S  Opcode = 0x2c
	OpcodeI32Load8U  Opcode = 0x2d
	OpcodeI32Load16S Opcode = 0x2e
	OpcodeI32Load16U Opcode = 0x2f
	OpcodeI64Load8S  Opcode = 0x30
	OpcodeI64Load8U  Opcode = 0x31
	OpcodeI64Load16S Opcode = 0x32
	OpcodeI64Load16U Opcode = 0x33
	OpcodeI64Load32S Opcode = 0x34
	OpcodeI64Load32U Opcode = 0x35
	OpcodeI32Store   Opcode = 0x36
	OpcodeI64Store   Opcode = 0x37
	OpcodeF32Store   Opcode = 0x38
	OpcodeF64Store   Opcode = 0x39
	OpcodeI32Store8  Opcode = 0x3a
	OpcodeI32Store16 Opcode = 0x3b
	OpcodeI64Store8  Opcode = 0x3c
	OpcodeI64Store16 Opcode = 0x3d
	OpcodeI64Store32 Opcode = 0x3e
	OpcodeMemorySize Opcode = 0x3f
	OpcodeMemoryGrow Opcode = 0x40

	// const instructions

	OpcodeI32Const Opcode = 0x41
	OpcodeI64Const Opcode = 0x42
	OpcodeF32Const Opcode = 0x43
	OpcodeF64Const Opcode = 0x44

	// numeric instructions

	OpcodeI32Eqz Opcode = 0x45
	OpcodeI32Eq  Opcode = 0x46
	OpcodeI32Ne  Opcode = 0x47
	OpcodeI32LtS Opcode = 0x48
	OpcodeI32LtU Opcode = 0x49
	OpcodeI32GtS Opcode = 0x4a
	OpcodeI32GtU Opcode = 0x4b
	OpcodeI32LeS Opcode = 0x4c
	OpcodeI32LeU Opcode = 0x4d
	OpcodeI32GeS Opcode = 0x4e
	OpcodeI32GeU Opcode = 0x4f

	OpcodeI64Eqz Opcode = 0x50
	OpcodeI64Eq  Opcode = 0x51
	OpcodeI64Ne  Opcode = 0x52
	OpcodeI64LtS Opcode = 0x53
	OpcodeI64LtU Opcode = 0x54
	OpcodeI64GtS Opcode = 0x55
	OpcodeI64GtU Opcode = 0x56
	OpcodeI64LeS Opcode = 0x57
	OpcodeI64LeU Opcode = 0x58
	OpcodeI64GeS Opcode = 0x59
	OpcodeI64GeU Opcode = 0x5a

	OpcodeF32Eq Opcode = 0x5b
	OpcodeF32Ne Opcode = 0x5c
	OpcodeF32Lt Opcode = 0x5d
	OpcodeF32Gt Opcode = 0x5e
	OpcodeF32Le Opcode = 0x5f
	OpcodeF32Ge Opcode = 0x60

	OpcodeF64Eq Opcode = 0x61
	OpcodeF64Ne Opcode = 0x62
	OpcodeF64Lt Opcode = 0x63
	OpcodeF64Gt Opcode = 0x64
	OpcodeF64Le Opcode = 0x65
	OpcodeF64Ge Opcode = 0x66

	OpcodeI32Clz    Opcode = 0x67
	OpcodeI32Ctz    Opcode = 0x68
	OpcodeI32Popcnt Opcode = 0x69
	OpcodeI32Add    Opcode = 0x6a
	OpcodeI32Sub    Opcode = 0x6b
	OpcodeI32Mul    Opcode = 0x6c
	OpcodeI32DivS   Opcode = 0x6d
	OpcodeI32DivU   Opcode = 0x6e
	OpcodeI32RemS   Opcode = 0x6f
	OpcodeI32RemU   Opcode = 0x70
	OpcodeI32And    Opcode = 0x71
	OpcodeI32Or     Opcode = 0x72
	OpcodeI32Xor    Opcode = 0x73
	OpcodeI32Shl    Opcode = 0x74
	OpcodeI32ShrS   Opcode = 0x75
	OpcodeI32ShrU   Opcode = 0x76
	OpcodeI32Rotl   Opcode = 0x77
	OpcodeI32Rotr   Opcode = 0x78

	OpcodeI64Clz    Opcode = 0x79
	OpcodeI64Ctz    Opcode = 0x7a
	OpcodeI64Popcnt Opcode = 0x7b
	OpcodeI64Add    Opcode = 0x7c
	OpcodeI64Sub    Opcode = 0x7d
	OpcodeI64Mul    Opcode = 0x7e
	OpcodeI64DivS   Opcode = 0x7f
	OpcodeI64DivU   Opcode = 0x80
	OpcodeI64RemS   Opcode = 0x81
	OpcodeI64RemU   Opcode = 0x82
	OpcodeI64And    Opcode = 0x83
	OpcodeI64Or     Opcode = 0x84
	OpcodeI64Xor    Opcode = 0x85
	OpcodeI64Shl    Opcode = 0x86
	OpcodeI64ShrS   Opcode = 0x87
	OpcodeI64ShrU   Opcode = 0x88
	OpcodeI64Rotl   Opcode = 0x89
	OpcodeI64Rotr   Opcode = 0x8a

	OpcodeF32Abs      Opcode = 0x8b
	OpcodeF32Neg      Opcode = 0x8c
	OpcodeF32Ceil     Opcode = 0x8d
	OpcodeF32Floor    Opcode = 0x8e
	OpcodeF32Trunc    Opcode = 0x8f
	OpcodeF32Nearest  Opcode = 0x90
	OpcodeF32Sqrt     Opcode = 0x91
	OpcodeF32Add      Opcode = 0x92
	OpcodeF32Sub      Opcode = 0x93
	OpcodeF32Mul      Opcode = 0x94
	OpcodeF32Div      Opcode = 0x95
	OpcodeF32Min      Opcode = 0x96
	OpcodeF32Max      Opcode = 0x97
	OpcodeF32Copysign Opcode = 0x98

	OpcodeF64Abs      Opcode = 0x99
	OpcodeF64Neg      Opcode = 0x9a
	OpcodeF64Ceil     Opcode = 0x9b
	OpcodeF64Floor    Opcode = 0x9c
	OpcodeF64Trunc    Opcode = 0x9d
	OpcodeF64Nearest  Opcode = 0x9e
	OpcodeF64Sqrt     Opcode = 0x9f
	OpcodeF64Add      Opcode = 0xa0
	OpcodeF64Sub      Opcode = 0xa1
	OpcodeF64Mul      Opcode = 0xa2
	OpcodeF64Div      Opcode = 0xa3
	OpcodeF64Min      Opcode = 0xa4
	OpcodeF64Max      Opcode = 0xa5
	OpcodeF64Copysign Opcode = 0xa6

	OpcodeI32WrapI64     Opcode = 0xa7
	OpcodeI32TruncF32S   Opcode = 0xa8
	OpcodeI32TruncF32U   Opcode = 0xa9
	OpcodeI32TruncF64S   Opcode = 0xaa
	OpcodeI32TruncF64U   Opcode = 0xab
	OpcodeI64ExtendI32S  Opcode = 0xac
	OpcodeI64ExtendI32U  Opcode = 0xad
	OpcodeI64TruncF32S   Opcode = 0xae
	OpcodeI64TruncF32U   Opcode = 0xaf
	OpcodeI64TruncF64S   Opcode = 0xb0
	OpcodeI64TruncF64U   Opcode = 0xb1
	OpcodeF32ConvertI32S Opcode = 0xb2
	OpcodeF32ConvertI32U Opcode = 0xb3
	OpcodeF32ConvertI64S Opcode = 0xb4
	OpcodeF32ConvertI64U Opcode = 0xb5
	OpcodeF32DemoteF64   Opcode = 0xb6
	OpcodeF64ConvertI32S Opcode = 0xb7
	OpcodeF64ConvertI32U Opcode = 0xb8
	OpcodeF64ConvertI64S Opcode = 0xb9
	OpcodeF64ConvertI64U Opcode = 0xba
	OpcodeF64PromoteF32  Opcode = 0xbb

	OpcodeI32ReinterpretF32 Opcode = 0xbc
	OpcodeI64ReinterpretF64 Opcode = 0xbd
	OpcodeF32ReinterpretI32 Opcode = 0xbe
	OpcodeF64ReinterpretI64 Opcode = 0xbf
)


// Immediate is the shape of the operands encoded after an opcode.
//
// See https://www.w3.org/TR/wasm-core-1/#instructions%E2%91%A6
type Immediate byte

const (
	// ImmediateNone is an opcode with no operands.
	ImmediateNone Immediate = iota
	// ImmediateBlockType is one inline block signature byte: BlockTypeEmpty or a ValueType.
	ImmediateBlockType
	// ImmediateIndex is one unsigned varint: a label, function, local or global index.
	ImmediateIndex
	// ImmediateCallIndirect is an unsigned varint type index followed by a reserved unsigned varint.
	ImmediateCallIndirect
	// ImmediateReserved is the reserved unsigned varint of memory.size and memory.grow.
	ImmediateReserved
	// ImmediateMemArg is an unsigned varint alignment followed by an unsigned varint offset.
	ImmediateMemArg
	// ImmediateI32 is a signed 32-bit varint.
	ImmediateI32
	// ImmediateI64 is a signed 64-bit varint.
	ImmediateI64
	// ImmediateF32 is a 4-byte little-endian IEEE-754 float.
	ImmediateF32
	// ImmediateF64 is an 8-byte little-endian IEEE-754 float.
	ImmediateF64
	// ImmediateBrTable is an unsigned varint arm count, that many unsigned varint labels, then the default label.
	ImmediateBrTable
)

type opcodeInfo struct {
	name string
	imm  Immediate
}

// opcodeTable has one entry per opcode defined in WebAssembly 1.0. Entries with an empty name are undefined.
var opcodeTable = [256]opcodeInfo{
	OpcodeUnreachable:       {"unreachable", ImmediateNone},
	OpcodeNop:               {"nop", ImmediateNone},
	OpcodeBlock:             {"block", ImmediateBlockType},
	OpcodeLoop:              {"loop", ImmediateBlockType},
	OpcodeIf:                {"if", ImmediateBlockType},
	OpcodeElse:              {"else", ImmediateNone},
	OpcodeEnd:               {"end", ImmediateNone},
	OpcodeBr:                {"br", ImmediateIndex},
	OpcodeBrIf:              {"br_if", ImmediateIndex},
	OpcodeBrTable:           {"br_table", ImmediateBrTable},
	OpcodeReturn:            {"return", ImmediateNone},
	OpcodeCall:              {"call", ImmediateIndex},
	OpcodeCallIndirect:      {"call_indirect", ImmediateCallIndirect},
	OpcodeDrop:              {"drop", ImmediateNone},
	OpcodeSelect:            {"select", ImmediateNone},
	OpcodeLocalGet:          {"local.get", ImmediateIndex},
	OpcodeLocalSet:          {"local.set", ImmediateIndex},
	OpcodeLocalTee:          {"local.tee", ImmediateIndex},
	OpcodeGlobalGet:         {"global.get", ImmediateIndex},
	OpcodeGlobalSet:         {"global.set", ImmediateIndex},
	OpcodeI32Load:           {"i32.load", ImmediateMemArg},
	OpcodeI64Load:           {"i64.load", ImmediateMemArg},
	OpcodeF32Load:           {"f32.load", ImmediateMemArg},
	OpcodeF64Load:           {"f64.load", ImmediateMemArg},
	OpcodeI32Load8S:         {"i32.load8_s", ImmediateMemArg},
	OpcodeI32Load8U:         {"i32.load8_u", ImmediateMemArg},
	OpcodeI32Load16S:        {"i32.load16_s", ImmediateMemArg},
	OpcodeI32Load16U:        {"i32.load16_u", ImmediateMemArg},
	OpcodeI64Load8S:         {"i64.load8_s", ImmediateMemArg},
	OpcodeI64Load8U:         {"i64.load8_u", ImmediateMemArg},
	OpcodeI64Load16S:        {"i64.load16_s", ImmediateMemArg},
	OpcodeI64Load16U:        {"i64.load16_u", ImmediateMemArg},
	OpcodeI64Load32S:        {"i64.load32_s", ImmediateMemArg},
	OpcodeI64Load32U:        {"i64.load32_u", ImmediateMemArg},
	OpcodeI32Store:          {"i32.store", ImmediateMemArg},
	OpcodeI64Store:          {"i64.store", ImmediateMemArg},
	OpcodeF32Store:          {"f32.store", ImmediateMemArg},
	OpcodeF64Store:          {"f64.store", ImmediateMemArg},
	OpcodeI32Store8:         {"i32.store8", ImmediateMemArg},
	OpcodeI32Store16:        {"i32.store16", ImmediateMemArg},
	OpcodeI64Store8:         {"i64.store8", ImmediateMemArg},
	OpcodeI64Store16:        {"i64.store16", ImmediateMemArg},
	OpcodeI64Store32:        {"i64.store32", ImmediateMemArg},
	OpcodeMemorySize:        {"memory.size", ImmediateReserved},
	OpcodeMemoryGrow:        {"memory.grow", ImmediateReserved},
	OpcodeI32Const:          {"i32.const", ImmediateI32},
	OpcodeI64Const:          {"i64.const", ImmediateI64},
	OpcodeF32Const:          {"f32.const", ImmediateF32},
	OpcodeF64Const:          {"f64.const", ImmediateF64},
	OpcodeI32Eqz:            {"i32.eqz", ImmediateNone},
	OpcodeI32Eq:             {"i32.eq", ImmediateNone},
	OpcodeI32Ne:             {"i32.ne", ImmediateNone},
	OpcodeI32LtS:            {"i32.lt_s", ImmediateNone},
	OpcodeI32LtU:            {"i32.lt_u", ImmediateNone},
	OpcodeI32GtS:            {"i32.gt_s", ImmediateNone},
	OpcodeI32GtU:            {"i32.gt_u", ImmediateNone},
	OpcodeI32LeS:            {"i32.le_s", ImmediateNone},
	OpcodeI32LeU:            {"i32.le_u", ImmediateNone},
	OpcodeI32GeS:            {"i32.ge_s", ImmediateNone},
	OpcodeI32GeU:            {"i32.ge_u", ImmediateNone},
	OpcodeI64Eqz:            {"i64.eqz", ImmediateNone},
	OpcodeI64Eq:             {"i64.eq", ImmediateNone},
	OpcodeI64Ne:             {"i64.ne", ImmediateNone},
	OpcodeI64LtS:            {"i64.lt_s", ImmediateNone},
	OpcodeI64LtU:            {"i64.lt_u", ImmediateNone},
	OpcodeI64GtS:            {"i64.gt_s", ImmediateNone},
	OpcodeI64GtU:            {"i64.gt_u", ImmediateNone},
	OpcodeI64LeS:            {"i64.le_s", ImmediateNone},
	OpcodeI64LeU:            {"i64.le_u", ImmediateNone},
	OpcodeI64GeS:            {"i64.ge_s", ImmediateNone},
	OpcodeI64GeU:            {"i64.ge_u", ImmediateNone},
	OpcodeF32Eq:             {"f32.eq", ImmediateNone},
	OpcodeF32Ne:             {"f32.ne", ImmediateNone},
	OpcodeF32Lt:             {"f32.lt", ImmediateNone},
	OpcodeF32Gt:             {"f32.gt", ImmediateNone},
	OpcodeF32Le:             {"f32.le", ImmediateNone},
	OpcodeF32Ge:             {"f32.ge", ImmediateNone},
	OpcodeF64Eq:             {"f64.eq", ImmediateNone},
	OpcodeF64Ne:             {"f64.ne", ImmediateNone},
	OpcodeF64Lt:             {"f64.lt", ImmediateNone},
	OpcodeF64Gt:             {"f64.gt", ImmediateNone},
	OpcodeF64Le:             {"f64.le", ImmediateNone},
	OpcodeF64Ge:             {"f64.ge", ImmediateNone},
	OpcodeI32Clz:            {"i32.clz", ImmediateNone},
	OpcodeI32Ctz:            {"i32.ctz", ImmediateNone},
	OpcodeI32Popcnt:         {"i32.popcnt", ImmediateNone},
	OpcodeI32Add:            {"i32.add", ImmediateNone},
	OpcodeI32Sub:            {"i32.sub", ImmediateNone},
	OpcodeI32Mul:            {"i32.mul", ImmediateNone},
	OpcodeI32DivS:           {"i32.div_s", ImmediateNone},
	OpcodeI32DivU:           {"i32.div_u", ImmediateNone},
	OpcodeI32RemS:           {"i32.rem_s", ImmediateNone},
	OpcodeI32RemU:           {"i32.rem_u", ImmediateNone},
	OpcodeI32And:            {"i32.and", ImmediateNone},
	OpcodeI32Or:             {"i32.or", ImmediateNone},
	OpcodeI32Xor:            {"i32.xor", ImmediateNone},
	OpcodeI32Shl:            {"i32.shl", ImmediateNone},
	OpcodeI32ShrS:           {"i32.shr_s", ImmediateNone},
	OpcodeI32ShrU:           {"i32.shr_u", ImmediateNone},
	OpcodeI32Rotl:           {"i32.rotl", ImmediateNone},
	OpcodeI32Rotr:           {"i32.rotr", ImmediateNone},
	OpcodeI64Clz:            {"i64.clz", ImmediateNone},
	OpcodeI64Ctz:            {"i64.ctz", ImmediateNone},
	OpcodeI64Popcnt:         {"i64.popcnt", ImmediateNone},
	OpcodeI64Add:            {"i64.add", ImmediateNone},
	OpcodeI64Sub:            {"i64.sub", ImmediateNone},
	OpcodeI64Mul:            {"i64.mul", ImmediateNone},
	OpcodeI64DivS:           {"i64.div_s", ImmediateNone},
	OpcodeI64DivU:           {"i64.div_u", ImmediateNone},
	OpcodeI64RemS:           {"i64.rem_s", ImmediateNone},
	OpcodeI64RemU:           {"i64.rem_u", ImmediateNone},
	OpcodeI64And:            {"i64.and", ImmediateNone},
	OpcodeI64Or:             {"i64.or", ImmediateNone},
	OpcodeI64Xor:            {"i64.xor", ImmediateNone},
	OpcodeI64Shl:            {"i64.shl", ImmediateNone},
	OpcodeI64ShrS:           {"i64.shr_s", ImmediateNone},
	OpcodeI64ShrU:           {"i64.shr_u", ImmediateNone},
	OpcodeI64Rotl:           {"i64.rotl", ImmediateNone},
	OpcodeI64Rotr:           {"i64.rotr", ImmediateNone},
	OpcodeF32Abs:            {"f32.abs", ImmediateNone},
	OpcodeF32Neg:            {"f32.neg", ImmediateNone},
	OpcodeF32Ceil:           {"f32.ceil", ImmediateNone},
	OpcodeF32Floor:          {"f32.floor", ImmediateNone},
	OpcodeF32Trunc:          {"f32.trunc", ImmediateNone},
	OpcodeF32Nearest:        {"f32.nearest", ImmediateNone},
	OpcodeF32Sqrt:           {"f32.sqrt", ImmediateNone},
	OpcodeF32Add:            {"f32.add", ImmediateNone},
	OpcodeF32Sub:            {"f32.sub", ImmediateNone},
	OpcodeF32Mul:            {"f32.mul", ImmediateNone},
	OpcodeF32Div:            {"f32.div", ImmediateNone},
	OpcodeF32Min:            {"f32.min", ImmediateNone},
	OpcodeF32Max:            {"f32.max", ImmediateNone},
	OpcodeF32Copysign:       {"f32.copysign", ImmediateNone},
	OpcodeF64Abs:            {"f64.abs", ImmediateNone},
	OpcodeF64Neg:            {"f64.neg", ImmediateNone},
	OpcodeF64Ceil:           {"f64.ceil", ImmediateNone},
	OpcodeF64Floor:          {"f64.floor", ImmediateNone},
	OpcodeF64Trunc:          {"f64.trunc", ImmediateNone},
	OpcodeF64Nearest:        {"f64.nearest", ImmediateNone},
	OpcodeF64Sqrt:           {"f64.sqrt", ImmediateNone},
	OpcodeF64Add:            {"f64.add", ImmediateNone},
	OpcodeF64Sub:            {"f64.sub", ImmediateNone},
	OpcodeF64Mul:            {"f64.mul", ImmediateNone},
	OpcodeF64Div:            {"f64.div", ImmediateNone},
	OpcodeF64Min:            {"f64.min", ImmediateNone},
	OpcodeF64Max:            {"f64.max", ImmediateNone},
	OpcodeF64Copysign:       {"f64.copysign", ImmediateNone},
	OpcodeI32WrapI64:        {"i32.wrap_i64", ImmediateNone},
	OpcodeI32TruncF32S:      {"i32.trunc_f32_s", ImmediateNone},
	OpcodeI32TruncF32U:      {"i32.trunc_f32_u", ImmediateNone},
	OpcodeI32TruncF64S:      {"i32.trunc_f64_s", ImmediateNone},
	OpcodeI32TruncF64U:      {"i32.trunc_f64_u", ImmediateNone},
	OpcodeI64ExtendI32S:     {"i64.extend_i32_s", ImmediateNone},
	OpcodeI64ExtendI32U:     {"i64.extend_i32_u", ImmediateNone},
	OpcodeI64TruncF32S:      {"i64.trunc_f32_s", ImmediateNone},
	OpcodeI64TruncF32U:      {"i64.trunc_f32_u", ImmediateNone},
	OpcodeI64TruncF64S:      {"i64.trunc_f64_s", ImmediateNone},
	OpcodeI64TruncF64U:      {"i64.trunc_f64_u", ImmediateNone},
	OpcodeF32ConvertI32S:    {"f32.convert_i32_s", ImmediateNone},
	OpcodeF32ConvertI32U:    {"f32.convert_i32_u", ImmediateNone},
	OpcodeF32ConvertI64S:    {"f32.convert_i64_s", ImmediateNone},
	OpcodeF32ConvertI64U:    {"f32.convert_i64_u", ImmediateNone},
	OpcodeF32DemoteF64:      {"f32.demote_f64", ImmediateNone},
	OpcodeF64ConvertI32S:    {"f64.convert_i32_s", ImmediateNone},
	OpcodeF64ConvertI32U:    {"f64.convert_i32_u", ImmediateNone},
	OpcodeF64ConvertI64S:    {"f64.convert_i64_s", ImmediateNone},
	OpcodeF64ConvertI64U:    {"f64.convert_i64_u", ImmediateNone},
	OpcodeF64PromoteF32:     {"f64.promote_f32", ImmediateNone},
	OpcodeI32ReinterpretF32: {"i32.reinterpret_f32", ImmediateNone},
	OpcodeI64ReinterpretF64: {"i64.reinterpret_f64", ImmediateNone},
	OpcodeF32ReinterpretI32: {"f32.reinterpret_i32", ImmediateNone},
	OpcodeF64ReinterpretI64: {"f64.reinterpret_i64", ImmediateNone},
}

// OpcodeInfo returns the text format name of the opcode and the shape of its immediates, or false if the byte is not
// an opcode defined in WebAssembly 1.0.
func OpcodeInfo(oc Opcode) (name string, imm Immediate, ok bool) {
	info := opcodeTable[oc]
	if info.name == "" {
		return "", ImmediateNone, false
	}
	return info.name, info.imm, true
}

// InstructionName returns the instruction corresponding to this binary Opcode, or an empty string if undefined.
// See https://www.w3.org/TR/2019/REC-wasm-core-1-20191205/#a7-index-of-instructions
func InstructionName(oc Opcode) string {
	return opcodeTable[oc].name
}

