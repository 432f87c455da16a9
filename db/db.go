package db

import (
	"github.com/d4j3y2k/keyboy/constants"
	"github.com/d4j3y2k/keyboy/model"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
)

func newClient() *dynamodb.DynamoDB {
	endpoint := constants.GetDynamoEndpoint()
	session, err := session.NewSession(&aws.Config{
		Region:   aws.String("localhost"),
		Endpoint: &endpoint,
	})
	if err != nil {
		panic("Could not create a new DynamoDB session because " + err.Error())
	}
	return dynamodb.New(session)
}

func SaveCard(c model.Card) {
	item, err := dynamodbattribute.MarshalMap(c)
	if err != nil {
		panic("Could not marshal card because: " + err.Error())
	}

	client := newClient()
	input := &dynamodb.PutItemInput{
		TableName: aws.String(constants.GetCardTableName()),
		Item:      item,
	}
	if _, err := client.PutItem(input); err != nil {
		panic("Error from DynamoDB: " + err.Error())
	}
}

func GetCard(id string) (model.Card, bool) {
	client := newClient()
	input := &dynamodb.GetItemInput{
		TableName: aws.String(constants.GetCardTableName()),
		Key: map[string]*dynamodb.AttributeValue{
			"id": {S: aws.String(id)},
		},
	}
	res, err := client.GetItem(input)
	if err != nil {
		panic("Error from DynamoDB: " + err.Error())
	}
	if res.Item == nil {
		return model.Card{}, false
	}

	var c model.Card
	if err := dynamodbattribute.UnmarshalMap(res.Item, &c); err != nil {
		panic("Could not unmarshal card because: " + err.Error())
	}
	return c, true
}
