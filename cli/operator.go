package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/frankonly/chainkit/chain"
	"github.com/frankonly/chainkit/crypto"
	"github.com/frankonly/chainkit/merkle"
	"github.com/frankonly/chainkit/storage"
)

var (
	appendCmd = &cobra.Command{
		Use:   "append HEX",
		Short: "Append a block for the given payload digest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := crypto.DigestFromHex(args[0])
			if err != nil {
				return fmt.Errorf("invalid payload digest %s: %w", args[0], err)
			}

			record, err := Store().Append(payload)
			if err == nil {
				fmt.Println(record.Index, record.Digest)
			}

			return err
		},
	}

	getCmd = &cobra.Command{
		Use:   "get INDEX",
		Short: "Get a block record by index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid index %s: %w", args[0], err)
			}

			record, err := Store().Get(index)
			if err == nil {
				fmt.Println("digest:  ", record.Digest)
				fmt.Println("previous:", record.Previous)
				fmt.Println("payload: ", record.Payload)
			}

			return err
		},
	}

	headCmd = &cobra.Command{
		Use:   "head",
		Short: "Print the digest of the last block",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			head, err := Store().Head()
			if err == nil {
				fmt.Println(head)
			}

			return err
		},
	}

	verifyCmd = &cobra.Command{
		Use:   "verify",
		Short: "Replay the stored chain and report the first mismatch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := Store().Verify()
			if err != nil {
				return err
			}

			if report.Status == chain.Valid {
				fmt.Println(report.Status)
			} else {
				fmt.Printf("%s at block %d\n", report.Status, report.Index)
			}

			return nil
		},
	}

	digestCmd = &cobra.Command{
		Use:   "digest",
		Short: "Print the merkle root over all stored payload digests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := Store()
			if store.Len() == 0 {
				return storage.ErrEmpty
			}

			leaves := make([]crypto.Digest, 0, store.Len())
			for i := uint64(0); i < store.Len(); i++ {
				record, err := store.Get(i)
				if err != nil {
					return err
				}

				leaves = append(leaves, record.Payload)
			}

			tree, err := merkle.Construct(leaves)
			if err != nil {
				return err
			}

			fmt.Println(tree.Root())
			return nil
		},
	}
)
