// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type ProgramError GenericError

// program results - keep in alphabetic order
var (
	ErrAccountDataTooSmall    = ProgramError("account data too small")
	ErrArithmeticOverflow     = ProgramError("arithmetic overflow")
	ErrInsufficientFunds      = ProgramError("insufficient funds")
	ErrInvalidAccountData     = ProgramError("invalid account data")
	ErrInvalidInstructionData = ProgramError("invalid instruction data")
	ErrNotEnoughAccountKeys   = ProgramError("not enough account keys")
	ErrUninitializedAccount   = ProgramError("uninitialized account")
)

// host and support errors - keep in alphabetic order
var (
	ErrAccountAlreadyInUse       = ExistsError("account already in use")
	ErrAccountSpaceTooLarge      = InvalidError("requested account space too large")
	ErrAlreadyInitialised        = ExistsError("already initialised")
	ErrAlreadyInitialisedToken   = ExistsError("token account already initialised")
	ErrIncorrectProgramID        = InvalidError("account not owned by the expected program")
	ErrInsufficientFundsForRent  = InvalidError("insufficient funds for rent")
	ErrInsufficientLamports      = InvalidError("insufficient lamports")
	ErrInsufficientTokens        = InvalidError("insufficient token balance")
	ErrInvalidChain              = InvalidError("invalid cluster name")
	ErrInvalidConfiguration      = InvalidError("configuration file must return a table")
	ErrInvalidCount              = InvalidError("invalid count")
	ErrInvalidCursor             = InvalidError("invalid cursor")
	ErrInvalidDerivedSigner      = InvalidError("derived signer does not match account")
	ErrInvalidKeypairFile        = InvalidError("invalid keypair file")
	ErrInvalidRentPolicy         = InvalidError("invalid rent policy")
	ErrInvalidStructPointer      = InvalidError("invalid struct pointer")
	ErrMintMismatch              = InvalidError("account mint does not match")
	ErrMissingRequiredSignature  = InvalidError("missing required signature")
	ErrOwnerMismatch             = InvalidError("account owner does not match")
	ErrReadonlyModified          = InvalidError("read-only account modified")
	ErrUnsupportedInstruction    = InvalidError("unsupported instruction")
	ErrExecutableNotWritable     = InvalidError("program account cannot be modified")
	ErrEmptyTransaction          = LengthError("transaction has no instructions")
	ErrRecordTooShort            = LengthError("record too short")
	ErrTokenAccountTooShort      = LengthError("token account data too short")
	ErrMintTooShort              = LengthError("mint data too short")
	ErrAccountNotFound           = NotFoundError("account not found")
	ErrProgramNotFound           = NotFoundError("program not found")
	ErrReceiptNotFound           = NotFoundError("receipt not found")
	ErrDatabaseVersionMismatch   = ProcessError("database version mismatch")
	ErrNotInitialised            = ProcessError("not initialised")
	ErrTransactionAlreadyInUse   = ProcessError("storage transaction already in use")
	ErrUninitializedMint         = ProcessError("mint is not initialised")
	ErrUninitializedTokenAccount = ProcessError("token account is not initialised")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e ProgramError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrProgram(e error) bool  { _, ok := e.(ProgramError); return ok }
