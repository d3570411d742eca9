package vm

// Primary opcodes. See cpu.go for the decode/dispatch table; this file
// only names the bytes so the switch in execute reads like a mnemonic
// listing instead of a wall of hex.
const (
	opNop = 0x00

	// binary register ALU, 2 bytes: opcode, (a<<4)|b
	opAdd = 0x01
	opSub = 0x02
	opMul = 0x03
	opDiv = 0x04
	opAnd = 0x05
	opOr  = 0x06
	opXor = 0x07
	opShl = 0x08
	opShr = 0x09

	// register stores/loads, 2 bytes
	opStb = 0x0A
	opStw = 0x0B
	opStd = 0x0C
	opLdb = 0x0D
	opLdw = 0x0E
	opLdd = 0x0F

	opAluImm = 0x10 // ADDI..LDDI, subcode in second byte high nibble

	opStackBranchReg = 0x20 // PUSH/POP/J/JT/JF/B/BT/BF/JAL, subcode in second byte high nibble
	opPushi          = 0x21

	opJi   = 0x23
	opJti  = 0x24
	opJfi  = 0x25
	opBi   = 0x26
	opBti  = 0x27
	opBfi  = 0x28
	opJali = 0x29

	opCgtq = 0x2A
	opCltq = 0x2B
	opCeq  = 0x2C
	opCnq  = 0x2D
	opCgt  = 0x2E
	opClt  = 0x2F

	opExt = 0x30 // MOVI/BAL/CGTQI../CLTI, subcode in second byte high nibble

	opMov    = 0x31
	opStbii  = 0x32
	opStwii  = 0x33
	opStdii  = 0x34
	opRet    = 0x35
	opBali   = 0x36

	opSyscall = 0x40
	opIret    = 0x41
	opCli     = 0x42
	opSti     = 0x43
)

// Subcodes for opAluImm (0x10): second byte is (sub<<4)|a.
const (
	subAddi = 0x1
	subSubi = 0x2
	subMuli = 0x3
	subDivi = 0x4
	subAndi = 0x5
	subOri  = 0x6
	subXori = 0x7
	subShli = 0x8
	subShri = 0x9
	subStbi = 0xA
	subStwi = 0xB
	subStdi = 0xC
	subLdbi = 0xD
	subLdwi = 0xE
	subLddi = 0xF
)

// Subcodes for opStackBranchReg (0x20).
const (
	subPush = 0x1
	subPop  = 0x2
	subJ    = 0x3
	subJt   = 0x4
	subJf   = 0x5
	subB    = 0x6
	subBt   = 0x7
	subBf   = 0x8
	subJal  = 0x9
)

// Subcodes for opExt (0x30).
const (
	subMovi  = 0x1
	subBal   = 0x6
	subCgtqi = 0xA
	subCltqi = 0xB
	subCeqi  = 0xC
	subCnqi  = 0xD
	subCgti  = 0xE
	subClti  = 0xF
)
