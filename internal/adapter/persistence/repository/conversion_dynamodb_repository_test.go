package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func transactionCanceled(codes ...string) error {
	reasons := make([]types.CancellationReason, 0, len(codes))
	for _, code := range codes {
		reasons = append(reasons, types.CancellationReason{Code: aws.String(code)})
	}
	return fmt.Errorf("operation error DynamoDB: TransactWriteItems: %w",
		&types.TransactionCanceledException{CancellationReasons: reasons})
}

func TestQuotationAlreadyConverted(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{
			// order put + one item put + quotation update
			name: "quotation condition failed",
			err:  transactionCanceled("None", "None", "ConditionalCheckFailed"),
			want: true,
		},
		{
			name: "order id collision is not a quotation conflict",
			err:  transactionCanceled("ConditionalCheckFailed", "None", "None"),
			want: false,
		},
		{
			name: "transaction conflict on the quotation",
			err:  transactionCanceled("None", "None", "TransactionConflict"),
			want: false,
		},
		{
			name: "no cancellation reasons",
			err:  transactionCanceled(),
			want: false,
		},
		{
			name: "plain store error",
			err:  errors.New("connection reset"),
			want: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := quotationAlreadyConverted(tc.err); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
